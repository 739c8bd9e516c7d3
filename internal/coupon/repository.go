package coupon

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound     = errors.New("coupon not found")
	ErrCodeExists   = errors.New("coupon code already exists")
	ErrInvalidCode  = errors.New("invalid coupon code")
	ErrBelowMinimum = errors.New("order subtotal is below the coupon minimum")
	ErrExpired      = errors.New("coupon has expired")
)

type Repository interface {
	List() ([]Coupon, error)
	GetByCode(code string) (Coupon, error)
	Create(c Coupon) (Coupon, error)
	Update(id int, c Coupon) (Coupon, error)
	Delete(id int) error
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	coupons []Coupon
	nextID  int
}

func NewInMemoryRepository(seed []Coupon) *InMemoryRepository {
	r := &InMemoryRepository{coupons: make([]Coupon, 0, len(seed)), nextID: 1}
	maxID := 0
	for _, c := range seed {
		r.coupons = append(r.coupons, c)
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() ([]Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Coupon, len(r.coupons))
	copy(out, r.coupons)
	return out, nil
}

func (r *InMemoryRepository) GetByCode(code string) (Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.coupons {
		if strings.EqualFold(c.Code, code) {
			return c, nil
		}
	}
	return Coupon{}, ErrNotFound
}

func (r *InMemoryRepository) Create(c Coupon) (Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.coupons {
		if strings.EqualFold(existing.Code, c.Code) {
			return Coupon{}, ErrCodeExists
		}
	}
	if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}
	r.coupons = append(r.coupons, c)
	return c, nil
}

func (r *InMemoryRepository) Update(id int, c Coupon) (Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.coupons {
		if r.coupons[i].ID == id {
			c.ID = id
			r.coupons[i] = c
			return c, nil
		}
	}
	return Coupon{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.coupons {
		if r.coupons[i].ID == id {
			r.coupons = append(r.coupons[:i], r.coupons[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
