package coupon

import (
	"strings"
	"time"
)

// Result is a successfully evaluated coupon and the discount it grants
// against the given subtotal.
type Result struct {
	Coupon   Coupon  `json:"coupon"`
	Discount float64 `json:"discount"`
}

// Evaluator is the coupon service surface checkout depends on.
type Evaluator interface {
	Evaluate(code string, subtotal float64) (Result, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Evaluate validates a code against the current subtotal. Checks run
// in a fixed order and the first failure wins: unknown or inactive
// code, then minimum order amount, then expiry.
func (s *Service) Evaluate(code string, subtotal float64) (Result, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Result{}, ErrInvalidCode
	}

	c, err := s.repo.GetByCode(normalized)
	if err == ErrNotFound {
		return Result{}, ErrInvalidCode
	}
	if err != nil {
		return Result{}, err
	}
	if !c.Active {
		return Result{}, ErrInvalidCode
	}
	if c.MinOrderAmount != nil && subtotal < *c.MinOrderAmount {
		return Result{}, ErrBelowMinimum
	}
	if c.ValidUntil != nil && s.now().After(*c.ValidUntil) {
		return Result{}, ErrExpired
	}

	return Result{Coupon: c, Discount: discountFor(c, subtotal)}, nil
}

// discountFor computes the granted discount. A fixed amount is passed
// through verbatim, even above the subtotal; the order composer floors
// the final total instead.
func discountFor(c Coupon, subtotal float64) float64 {
	switch c.DiscountType {
	case TypePercentage:
		d := subtotal * c.DiscountValue / 100
		if c.MaxDiscountAmount != nil && d > *c.MaxDiscountAmount {
			d = *c.MaxDiscountAmount
		}
		return d
	default:
		return c.DiscountValue
	}
}

func (s *Service) List() ([]Coupon, error) {
	return s.repo.List()
}

func (s *Service) Create(c Coupon) (Coupon, error) {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		return Coupon{}, ErrInvalidCode
	}
	if c.ValidFrom.IsZero() {
		c.ValidFrom = s.now()
	}
	return s.repo.Create(c)
}

func (s *Service) Update(id int, c Coupon) (Coupon, error) {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		return Coupon{}, ErrInvalidCode
	}
	return s.repo.Update(id, c)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
