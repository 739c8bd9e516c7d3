package cart

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("cart line not found")
	// ErrDuplicateLine surfaces a store-level uniqueness conflict: two
	// concurrent adds of the same selection raced past the matcher.
	ErrDuplicateLine   = errors.New("cart line already exists for this selection")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

type Repository interface {
	ListByUser(userID int) ([]Line, error)
	ListByUserAndProduct(userID, productID int) ([]Line, error)
	GetByID(lineID int) (Line, error)
	Insert(line Line) (Line, error)
	UpdateQuantity(lineID, quantity int, updatedAt string) (Line, error)
	Delete(lineID int) error
	ClearUser(userID int) error
}

// InMemoryRepository is used for tests and local scenarios. It
// enforces the same selection uniqueness the Postgres index does.
type InMemoryRepository struct {
	mu     sync.RWMutex
	lines  []Line
	nextID int
}

func NewInMemoryRepository(seed []Line) *InMemoryRepository {
	r := &InMemoryRepository{lines: make([]Line, 0, len(seed)), nextID: 1}
	maxID := 0
	for _, l := range seed {
		r.lines = append(r.lines, l)
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Line, 0)
	for _, l := range r.lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) ListByUserAndProduct(userID, productID int) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Line, 0)
	for _, l := range r.lines {
		if l.UserID == userID && l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(lineID int) (Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.lines {
		if l.ID == lineID {
			return l, nil
		}
	}
	return Line{}, ErrNotFound
}

func (r *InMemoryRepository) Insert(line Line) (Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if l.UserID == line.UserID && l.ProductID == line.ProductID &&
			l.Matches(line.VariantLabel(), line.MeasurementLabel()) {
			return Line{}, ErrDuplicateLine
		}
	}
	if line.ID == 0 {
		line.ID = r.nextID
		r.nextID++
	}
	r.lines = append(r.lines, line)
	return line, nil
}

func (r *InMemoryRepository) UpdateQuantity(lineID, quantity int, updatedAt string) (Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.lines {
		if r.lines[i].ID == lineID {
			r.lines[i].Quantity = quantity
			if updatedAt != "" {
				r.lines[i].UpdatedAt = updatedAt
			}
			return r.lines[i], nil
		}
	}
	return Line{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(lineID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.lines {
		if r.lines[i].ID == lineID {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) ClearUser(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := make([]Line, 0, len(r.lines))
	for _, l := range r.lines {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	r.lines = kept
	return nil
}
