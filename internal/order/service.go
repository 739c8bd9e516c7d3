package order

import (
	"strings"
	"time"

	"github.com/nattakornv/storefront-backend/internal/cart"
	"github.com/nattakornv/storefront-backend/internal/coupon"
)

// Service composes orders from cart contents and drives the status
// machines afterwards.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Compose snapshots the given cart items into an immutable order. The
// unit price carried by each item is the resolver's output at this
// moment; the order never consults the catalog again. Clearing the
// cart afterwards is the caller's responsibility, once the order is
// durably created.
func (s *Service) Compose(userID int, shippingAddress string, items []cart.Item, applied *coupon.Result) (Order, error) {
	if strings.TrimSpace(shippingAddress) == "" {
		return Order{}, ErrEmptyAddress
	}
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}

	subtotal := cart.Subtotal(items)
	var discount float64
	var couponCode *string
	if applied != nil {
		discount = applied.Discount
		code := applied.Coupon.Code
		couponCode = &code
	}
	final := subtotal - discount
	// a fixed coupon above the subtotal is allowed through the
	// evaluator; the order itself never goes negative
	if final < 0 {
		final = 0
	}

	now := time.Now().UTC().Format(time.RFC3339)
	ord := Order{
		UserID:          userID,
		Subtotal:        subtotal,
		DiscountAmount:  discount,
		FinalAmount:     final,
		CouponCode:      couponCode,
		Status:          StatusPending,
		PaymentStatus:   PaymentPending,
		ShippingAddress: shippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, it := range items {
		ord.Lines = append(ord.Lines, Line{
			ProductID:        it.ProductID,
			ProductName:      it.ProductName,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			VariantLabel:     it.VariantLabel(),
			MeasurementLabel: it.MeasurementLabel(),
		})
	}

	return s.repo.Create(ord)
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

// GetForUser fetches one order, visible to its owner or to an admin.
func (s *Service) GetForUser(userID, orderID int, admin bool) (Order, error) {
	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	if ord.UserID != userID && !admin {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

// UpdateStatus moves the fulfilment status, rejecting transitions the
// machine does not allow.
func (s *Service) UpdateStatus(orderID int, status string) (Order, error) {
	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	if !CanTransitionStatus(ord.Status, status) {
		return Order{}, ErrBadTransition
	}
	return s.repo.UpdateStatus(orderID, status, time.Now().UTC().Format(time.RFC3339))
}

// UpdatePaymentStatus moves the payment status independently of the
// fulfilment status.
func (s *Service) UpdatePaymentStatus(orderID int, paymentStatus string) (Order, error) {
	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	if !CanTransitionPayment(ord.PaymentStatus, paymentStatus) {
		return Order{}, ErrBadTransition
	}
	return s.repo.UpdatePaymentStatus(orderID, paymentStatus, time.Now().UTC().Format(time.RFC3339))
}
