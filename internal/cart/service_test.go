package cart

import (
	"testing"

	"github.com/nattakornv/storefront-backend/internal/catalog"
	"github.com/nattakornv/storefront-backend/internal/option"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func seedCatalog() *catalog.Service {
	return catalog.NewService(catalog.NewInMemoryRepository([]catalog.Product{
		{
			ID:        1,
			Name:      "Cat Shampoo",
			BasePrice: 100,
			SalePrice: fptr(90),
			VariantOptions: []option.Option{
				{Label: "Red", Price: fptr(110)},
				{Label: "Blue"},
			},
			MeasurementOptions: []option.Option{
				{Label: "500ml", Price: fptr(50)},
				{Label: "1L", Price: fptr(95)},
			},
		},
		{ID: 2, Name: "Litter Box", BasePrice: 60},
	}))
}

func TestAddToCart_SameBareSelectionMergesIntoOneLine(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo, seedCatalog())

	if _, err := service.AddToCart(42, 2, 1, nil, nil); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	line, err := service.AddToCart(42, 2, 2, nil, nil)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if line.Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", line.Quantity)
	}

	lines, _ := repo.ListByUser(42)
	if len(lines) != 1 {
		t.Fatalf("expected a single line after merge, got %d", len(lines))
	}
}

func TestAddToCart_DifferentVariantsStayDistinct(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo, seedCatalog())

	if _, err := service.AddToCart(42, 1, 1, sptr("Red"), nil); err != nil {
		t.Fatalf("add Red failed: %v", err)
	}
	if _, err := service.AddToCart(42, 1, 1, sptr("Blue"), nil); err != nil {
		t.Fatalf("add Blue failed: %v", err)
	}

	lines, _ := repo.ListByUser(42)
	if len(lines) != 2 {
		t.Fatalf("expected two distinct lines, got %d", len(lines))
	}
}

func TestAddToCart_JSONWrappedMeasurementMergesWithBareLabel(t *testing.T) {
	// legacy row stores the measurement as a JSON-encoded object; a new
	// add with the bare label must merge into it
	legacy := Line{ID: 9, UserID: 42, ProductID: 1, Quantity: 1,
		SelectedMeasurement: sptr(`{"label":"500ml","price":50}`),
		MeasurementPrice:    fptr(50)}
	repo := NewInMemoryRepository([]Line{legacy})
	service := NewService(repo, seedCatalog())

	line, err := service.AddToCart(42, 1, 2, nil, sptr("500ml"))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if line.ID != 9 || line.Quantity != 3 {
		t.Fatalf("expected merge into legacy line 9 with quantity 3, got %+v", line)
	}

	lines, _ := repo.ListByUser(42)
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
}

func TestAddToCart_SnapshotsOptionPrices(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo, seedCatalog())

	line, err := service.AddToCart(42, 1, 1, sptr("Red"), sptr("500ml"))
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if line.VariantPrice == nil || *line.VariantPrice != 110 {
		t.Fatalf("expected variant price snapshot 110, got %v", line.VariantPrice)
	}
	if line.MeasurementPrice == nil || *line.MeasurementPrice != 50 {
		t.Fatalf("expected measurement price snapshot 50, got %v", line.MeasurementPrice)
	}
}

func TestAddToCart_UnknownLabelRejected(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil), seedCatalog())

	if _, err := service.AddToCart(42, 1, 1, sptr("Green"), nil); err != catalog.ErrUnknownVariant {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	if _, err := service.AddToCart(42, 1, 0, nil, nil); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := service.AddToCart(42, 999, 1, nil, nil); err != catalog.ErrNotFound {
		t.Fatalf("expected catalog.ErrNotFound, got %v", err)
	}
}

func TestGetCart_SnapshotWinsOverLaterCatalogChange(t *testing.T) {
	catalogRepo := catalog.NewInMemoryRepository([]catalog.Product{{
		ID:        1,
		Name:      "Cat Shampoo",
		BasePrice: 100,
		VariantOptions: []option.Option{
			{Label: "Red", Price: fptr(110)},
		},
	}})
	catalogService := catalog.NewService(catalogRepo)
	repo := NewInMemoryRepository(nil)
	service := NewService(repo, catalogService)

	if _, err := service.AddToCart(42, 1, 1, sptr("Red"), nil); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// catalog price jumps after the line recorded its own price
	if _, err := catalogRepo.Update(1, catalog.Product{
		Name:      "Cat Shampoo",
		BasePrice: 500,
		VariantOptions: []option.Option{
			{Label: "Red", Price: fptr(550)},
		},
	}); err != nil {
		t.Fatalf("catalog update failed: %v", err)
	}

	items, err := service.GetCart(42)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
	if items[0].UnitPrice != 110 {
		t.Fatalf("snapshot price must survive catalog edits, got %v", items[0].UnitPrice)
	}
}

func TestGetCart_NoSnapshotFallsBackToLivePrice(t *testing.T) {
	catalogRepo := catalog.NewInMemoryRepository([]catalog.Product{
		{ID: 2, Name: "Litter Box", BasePrice: 60},
	})
	catalogService := catalog.NewService(catalogRepo)
	repo := NewInMemoryRepository(nil)
	service := NewService(repo, catalogService)

	if _, err := service.AddToCart(42, 2, 2, nil, nil); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// no snapshot on the line, so a sale shows up at render time
	if _, err := catalogRepo.Update(2, catalog.Product{
		Name: "Litter Box", BasePrice: 60, SalePrice: fptr(45),
	}); err != nil {
		t.Fatalf("catalog update failed: %v", err)
	}

	items, err := service.GetCart(42)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if items[0].UnitPrice != 45 {
		t.Fatalf("expected live sale price 45, got %v", items[0].UnitPrice)
	}
	if items[0].LineTotal != 90 {
		t.Fatalf("expected line total 90, got %v", items[0].LineTotal)
	}
}

func TestUpdateQuantity_OwnerGuardAndRemoveAtZero(t *testing.T) {
	repo := NewInMemoryRepository([]Line{{ID: 5, UserID: 42, ProductID: 2, Quantity: 2}})
	service := NewService(repo, seedCatalog())

	if _, err := service.UpdateQuantity(7, 5, 1); err != ErrNotFound {
		t.Fatalf("foreign user must not see the line, got %v", err)
	}

	line, err := service.UpdateQuantity(42, 5, 4)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if line.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", line.Quantity)
	}

	if _, err := service.UpdateQuantity(42, 5, 0); err != nil {
		t.Fatalf("zero quantity should remove, got error %v", err)
	}
	if _, err := repo.GetByID(5); err != ErrNotFound {
		t.Fatalf("line should be gone, got %v", err)
	}
}
