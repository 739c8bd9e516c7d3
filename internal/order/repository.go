package order

import (
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrEmptyAddress  = errors.New("shipping address is required")
	ErrBadTransition = errors.New("status transition not allowed")
)

type Repository interface {
	// Create persists the order together with its lines.
	Create(ord Order) (Order, error)
	GetByID(id int) (Order, error)
	ListByUser(userID int) ([]Order, error)
	UpdateStatus(id int, status, updatedAt string) (Order, error)
	UpdatePaymentStatus(id int, paymentStatus, updatedAt string) (Order, error)
}

type InMemoryRepository struct {
	mu         sync.RWMutex
	orders     []Order
	nextID     int
	nextLineID int
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{orders: make([]Order, 0, len(seed)), nextID: 1, nextLineID: 1}
	maxID := 0
	for _, o := range seed {
		r.orders = append(r.orders, o)
		if o.ID > maxID {
			maxID = o.ID
		}
	}
	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ord.ID == 0 {
		ord.ID = r.nextID
		r.nextID++
	}
	for i := range ord.Lines {
		ord.Lines[i].ID = r.nextLineID
		ord.Lines[i].OrderID = ord.ID
		r.nextLineID++
	}
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(id int, status, updatedAt string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = updatedAt
			return r.orders[i], nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) UpdatePaymentStatus(id int, paymentStatus, updatedAt string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].PaymentStatus = paymentStatus
			r.orders[i].UpdatedAt = updatedAt
			return r.orders[i], nil
		}
	}
	return Order{}, ErrNotFound
}
