package catalog

import (
	"github.com/nattakornv/storefront-backend/internal/option"
)

// ServiceInterface lets other packages (cart, order) depend on the
// catalog without pulling in the concrete service.
type ServiceInterface interface {
	List(category string) ([]Product, error)
	ListByIDs(ids []int) ([]Product, error)
	GetByID(id int) (Product, error)
	ResolveSelection(productID int, variantLabel, measurementLabel *string) (Selection, error)
}

// Selection is a product plus the caller's resolved option choices and
// the price quote for that combination.
type Selection struct {
	Product     Product        `json:"product"`
	Variant     *option.Option `json:"variant,omitempty"`
	Measurement *option.Option `json:"measurement,omitempty"`
	Quote       Quote          `json:"quote"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(category string) ([]Product, error) {
	return s.repo.List(category)
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	return s.repo.Create(p)
}

func (s *Service) Update(id int, p Product) (Product, error) {
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

// ResolveSelection looks the labels up on the product's normalized
// option lists and prices the combination. A label that names no
// option on the product is an error, not a silent fallback.
func (s *Service) ResolveSelection(productID int, variantLabel, measurementLabel *string) (Selection, error) {
	p, err := s.repo.GetByID(productID)
	if err != nil {
		return Selection{}, err
	}

	sel := Selection{Product: p}
	if variantLabel != nil {
		sel.Variant = p.FindVariant(*variantLabel)
		if sel.Variant == nil {
			return Selection{}, ErrUnknownVariant
		}
	}
	if measurementLabel != nil {
		sel.Measurement = p.FindMeasurement(*measurementLabel)
		if sel.Measurement == nil {
			return Selection{}, ErrUnknownMeasurement
		}
	}

	sel.Quote = ResolvePrice(p, sel.Variant, sel.Measurement)
	return sel, nil
}
