package cart

import (
	"time"

	"github.com/nattakornv/storefront-backend/internal/catalog"
	"github.com/nattakornv/storefront-backend/internal/option"
)

// Service implements the cart line matching rules on top of the
// repository: an add either merges into the existing line for the same
// (product, variant, measurement) selection or inserts a new one with
// price snapshots taken at this moment.
type Service struct {
	repo    Repository
	catalog catalog.ServiceInterface
}

func NewService(repo Repository, catalogService catalog.ServiceInterface) *Service {
	return &Service{repo: repo, catalog: catalogService}
}

// AddToCart merges or inserts and returns the affected line.
func (s *Service) AddToCart(userID, productID, qty int, variantLabel, measurementLabel *string) (Line, error) {
	if qty <= 0 {
		return Line{}, ErrInvalidQuantity
	}

	// validates the product and labels, and resolves option prices for
	// the snapshot
	sel, err := s.catalog.ResolveSelection(productID, variantLabel, measurementLabel)
	if err != nil {
		return Line{}, err
	}

	existing, err := s.repo.ListByUserAndProduct(userID, productID)
	if err != nil {
		return Line{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, l := range existing {
		if l.Matches(variantLabel, measurementLabel) {
			return s.repo.UpdateQuantity(l.ID, l.Quantity+qty, now)
		}
	}

	line := Line{
		UserID:              userID,
		ProductID:           productID,
		Quantity:            qty,
		SelectedVariant:     variantLabel,
		SelectedMeasurement: measurementLabel,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if sel.Variant != nil {
		line.VariantPrice = sel.Variant.Price
	}
	if sel.Measurement != nil {
		line.MeasurementPrice = sel.Measurement.Price
	}
	return s.repo.Insert(line)
}

// GetCart returns the user's lines enriched with product details and
// the price each line renders at: snapshots win when present, live
// catalog price otherwise.
func (s *Service) GetCart(userID int) ([]Item, error) {
	lines, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []Item{}, nil
	}

	idSet := map[int]struct{}{}
	ids := make([]int, 0, len(lines))
	for _, l := range lines {
		if _, ok := idSet[l.ProductID]; !ok {
			idSet[l.ProductID] = struct{}{}
			ids = append(ids, l.ProductID)
		}
	}
	products, err := s.catalog.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		p, ok := byID[l.ProductID]
		if !ok {
			// product deleted from the catalog after the line was
			// added; skip rather than fail the whole cart
			continue
		}
		unit := lineUnitPrice(p, l)
		items = append(items, Item{
			Line:        l,
			ProductName: p.Name,
			UnitPrice:   unit,
			LineTotal:   unit * float64(l.Quantity),
		})
	}
	return items, nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the
// line. The line must belong to the caller.
func (s *Service) UpdateQuantity(userID, lineID, qty int) (Line, error) {
	l, err := s.repo.GetByID(lineID)
	if err != nil {
		return Line{}, err
	}
	if l.UserID != userID {
		return Line{}, ErrNotFound
	}
	if qty <= 0 {
		if err := s.repo.Delete(lineID); err != nil {
			return Line{}, err
		}
		return Line{}, nil
	}
	return s.repo.UpdateQuantity(lineID, qty, time.Now().UTC().Format(time.RFC3339))
}

// RemoveLine deletes a line owned by the caller.
func (s *Service) RemoveLine(userID, lineID int) error {
	l, err := s.repo.GetByID(lineID)
	if err != nil {
		return err
	}
	if l.UserID != userID {
		return ErrNotFound
	}
	return s.repo.Delete(lineID)
}

// ClearCart empties the user's cart.
func (s *Service) ClearCart(userID int) error {
	return s.repo.ClearUser(userID)
}

// lineUnitPrice renders the price for one line. Snapshot prices taken
// at add time are authoritative; lines without any snapshot fall back
// to the live catalog price.
func lineUnitPrice(p catalog.Product, l Line) float64 {
	if l.VariantPrice == nil && l.MeasurementPrice == nil {
		return catalog.ResolvePrice(p, nil, nil).UnitPrice
	}
	var variant, measurement *option.Option
	if l.VariantPrice != nil {
		variant = &option.Option{Price: l.VariantPrice}
	}
	if l.MeasurementPrice != nil {
		measurement = &option.Option{Price: l.MeasurementPrice}
	}
	return catalog.ResolvePrice(p, variant, measurement).UnitPrice
}
