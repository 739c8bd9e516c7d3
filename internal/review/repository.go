package review

import (
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("review not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

type Repository interface {
	ListByProduct(productID int) ([]Review, error)
	GetByID(reviewID int) (Review, error)
	Create(r Review) (Review, error)
	Delete(reviewID int) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	reviews []Review
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{reviews: make([]Review, 0), nextID: 1}
}

func (r *InMemoryRepository) ListByProduct(productID int) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Review, 0)
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(reviewID int) (Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rv := range r.reviews {
		if rv.ReviewID == reviewID {
			return rv, nil
		}
	}
	return Review{}, ErrNotFound
}

func (r *InMemoryRepository) Create(rv Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv.ReviewID = r.nextID
	r.nextID++
	r.reviews = append(r.reviews, rv)
	return rv, nil
}

func (r *InMemoryRepository) Delete(reviewID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rv := range r.reviews {
		if rv.ReviewID == reviewID {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
