package cart

import (
	"github.com/nattakornv/storefront-backend/internal/option"
)

// Line is one cart row. SelectedVariant/SelectedMeasurement hold the
// stored raw value: new rows carry the bare label, older rows may
// carry a JSON-encoded object containing one. Comparisons always go
// through the unwrapped label.
type Line struct {
	ID                  int      `json:"lineId"`
	UserID              int      `json:"userId"`
	ProductID           int      `json:"productId"`
	Quantity            int      `json:"quantity"`
	SelectedVariant     *string  `json:"selectedVariant,omitempty"`
	SelectedMeasurement *string  `json:"selectedMeasurement,omitempty"`
	VariantPrice        *float64 `json:"variantPrice,omitempty"`
	MeasurementPrice    *float64 `json:"measurementPrice,omitempty"`
	CreatedAt           string   `json:"createdAt,omitempty"`
	UpdatedAt           string   `json:"updatedAt,omitempty"`
}

// VariantLabel unwraps the stored variant to its bare label.
func (l Line) VariantLabel() *string {
	return option.Label(l.SelectedVariant)
}

// MeasurementLabel unwraps the stored measurement to its bare label.
func (l Line) MeasurementLabel() *string {
	return option.Label(l.SelectedMeasurement)
}

// Matches reports whether the line holds the same selection, with nil
// labels counting as equal to nil.
func (l Line) Matches(variantLabel, measurementLabel *string) bool {
	return labelsEqual(l.VariantLabel(), variantLabel) &&
		labelsEqual(l.MeasurementLabel(), measurementLabel)
}

func labelsEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Item is a cart line enriched with product details and the price the
// line renders at right now.
type Item struct {
	Line
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
}

// Subtotal sums the line totals of the given items.
func Subtotal(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal
	}
	return total
}
