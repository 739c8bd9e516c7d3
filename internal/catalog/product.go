package catalog

import (
	"github.com/nattakornv/storefront-backend/internal/option"
)

// Product represents a catalog product and maps to the `products`
// table. Option lists are already normalized; raw shapes never leave
// the repository layer.
type Product struct {
	ID                 int             `json:"productId"`
	Name               string          `json:"productName"`
	Description        string          `json:"productDesc,omitempty"`
	Category           *string         `json:"category,omitempty"`
	BasePrice          float64         `json:"basePrice"`
	SalePrice          *float64        `json:"salePrice,omitempty"`
	VariantOptions     []option.Option `json:"variantOptions"`
	MeasurementOptions []option.Option `json:"measurementOptions"`
	StockQty           int             `json:"stockQty"`
	ImageURL           *string         `json:"imageUrl,omitempty"`
	CreatedAt          string          `json:"createdAt,omitempty"`
	UpdatedAt          string          `json:"updatedAt,omitempty"`
}

// FindVariant returns the variant option with the given label, or nil.
func (p Product) FindVariant(label string) *option.Option {
	return findByLabel(p.VariantOptions, label)
}

// FindMeasurement returns the measurement option with the given label, or nil.
func (p Product) FindMeasurement(label string) *option.Option {
	return findByLabel(p.MeasurementOptions, label)
}

func findByLabel(opts []option.Option, label string) *option.Option {
	for i := range opts {
		if opts[i].Label == label {
			return &opts[i]
		}
	}
	return nil
}
