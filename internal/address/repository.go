package address

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("address not found")

type Repository interface {
	ListByUser(userID int) ([]Address, error)
	// GetByID is owner scoped; an address belonging to another user
	// reads as not found.
	GetByID(userID, addressID int) (Address, error)
	Create(a Address) (Address, error)
	Update(a Address) (Address, error)
	Delete(userID, addressID int) error
}

type InMemoryRepository struct {
	mu        sync.RWMutex
	addresses []Address
	nextID    int
}

func NewInMemoryRepository(seed []Address) *InMemoryRepository {
	r := &InMemoryRepository{addresses: make([]Address, 0, len(seed)), nextID: 1}
	maxID := 0
	for _, a := range seed {
		r.addresses = append(r.addresses, a)
		if a.AddressID > maxID {
			maxID = a.AddressID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Address, 0)
	for _, a := range r.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(userID, addressID int) (Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.addresses {
		if a.AddressID == addressID && a.UserID == userID {
			return a, nil
		}
	}
	return Address{}, ErrNotFound
}

func (r *InMemoryRepository) Create(a Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.AddressID = r.nextID
	r.nextID++
	r.addresses = append(r.addresses, a)
	return a, nil
}

func (r *InMemoryRepository) Update(a Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.addresses {
		if r.addresses[i].AddressID == a.AddressID && r.addresses[i].UserID == a.UserID {
			a.CreatedAt = r.addresses[i].CreatedAt
			r.addresses[i] = a
			return a, nil
		}
	}
	return Address{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(userID, addressID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.addresses {
		if r.addresses[i].AddressID == addressID && r.addresses[i].UserID == userID {
			r.addresses = append(r.addresses[:i], r.addresses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
