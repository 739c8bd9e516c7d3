package wishlist

import (
	"errors"
	"sync"
)

var (
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
	ErrNotInWishlist     = errors.New("product not in wishlist")
)

type Repository interface {
	// ListProductIDs returns the user's wishlist in insertion order.
	ListProductIDs(userID int) ([]int, error)
	Add(userID, productID int, createdAt string) error
	Remove(userID, productID int) error
}

type entry struct {
	userID    int
	productID int
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	entries []entry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{entries: make([]entry, 0)}
}

func (r *InMemoryRepository) ListProductIDs(userID int) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int, 0)
	for _, e := range r.entries {
		if e.userID == userID {
			out = append(out, e.productID)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Add(userID, productID int, createdAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.userID == userID && e.productID == productID {
			return ErrAlreadyInWishlist
		}
	}
	r.entries = append(r.entries, entry{userID: userID, productID: productID})
	return nil
}

func (r *InMemoryRepository) Remove(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.userID == userID && e.productID == productID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotInWishlist
}
