package catalog

import (
	"testing"

	"github.com/nattakornv/storefront-backend/internal/option"
)

func fptr(v float64) *float64 { return &v }

func TestResolvePrice_BothOptionPricesSum(t *testing.T) {
	p := Product{BasePrice: 200, SalePrice: fptr(150)}
	variant := &option.Option{Label: "Red", Price: fptr(60)}
	measurement := &option.Option{Label: "1L", Price: fptr(40)}

	q := ResolvePrice(p, variant, measurement)
	if q.UnitPrice != 100 {
		t.Fatalf("expected option prices to sum to 100 regardless of sale price, got %v", q.UnitPrice)
	}
	if !q.Discounted || q.DiscountPercent != 50 {
		t.Fatalf("expected 50%% discount vs base, got %+v", q)
	}
}

func TestResolvePrice_SingleOptionPriceOverridesSale(t *testing.T) {
	p := Product{BasePrice: 100, SalePrice: fptr(80)}
	variant := &option.Option{Label: "Red", Price: fptr(95)}

	q := ResolvePrice(p, variant, nil)
	if q.UnitPrice != 95 {
		t.Fatalf("option price must fully replace sale price, got %v", q.UnitPrice)
	}
	if !q.Discounted || q.DiscountPercent != 5 {
		t.Fatalf("expected 5%% discount, got %+v", q)
	}
}

func TestResolvePrice_NoOptionPriceFallsBackToSale(t *testing.T) {
	p := Product{BasePrice: 100, SalePrice: fptr(75)}
	variant := &option.Option{Label: "Red"} // selected but priceless

	q := ResolvePrice(p, variant, nil)
	if q.UnitPrice != 75 {
		t.Fatalf("expected sale price 75, got %v", q.UnitPrice)
	}
	if !q.Discounted || q.DiscountPercent != 25 {
		t.Fatalf("expected 25%% discount, got %+v", q)
	}
}

func TestResolvePrice_NoSalePriceUsesBase(t *testing.T) {
	p := Product{BasePrice: 120}

	q := ResolvePrice(p, nil, nil)
	if q.UnitPrice != 120 {
		t.Fatalf("expected base price 120, got %v", q.UnitPrice)
	}
	if q.Discounted || q.DiscountPercent != 0 {
		t.Fatalf("no discount expected, got %+v", q)
	}
}

func TestResolvePrice_OptionSurchargeAboveBaseIsNotDiscounted(t *testing.T) {
	p := Product{BasePrice: 100, SalePrice: fptr(80)}
	measurement := &option.Option{Label: "2L", Price: fptr(140)}

	q := ResolvePrice(p, nil, measurement)
	if q.UnitPrice != 140 {
		t.Fatalf("expected surcharge price 140, got %v", q.UnitPrice)
	}
	if q.Discounted {
		t.Fatalf("price above base must not flag a discount, got %+v", q)
	}
}

func TestResolveSelection_UnknownLabels(t *testing.T) {
	repo := NewInMemoryRepository([]Product{{
		ID:        1,
		Name:      "Shampoo",
		BasePrice: 100,
		VariantOptions: []option.Option{
			{Label: "Herbal"},
		},
	}})
	service := NewService(repo)

	bogus := "Citrus"
	if _, err := service.ResolveSelection(1, &bogus, nil); err != ErrUnknownVariant {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}

	if _, err := service.ResolveSelection(1, nil, &bogus); err != ErrUnknownMeasurement {
		t.Fatalf("expected ErrUnknownMeasurement, got %v", err)
	}

	herbal := "Herbal"
	sel, err := service.ResolveSelection(1, &herbal, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.Quote.UnitPrice != 100 {
		t.Fatalf("expected base price quote, got %v", sel.Quote.UnitPrice)
	}
}
