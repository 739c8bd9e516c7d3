package catalog

import (
	"math"

	"github.com/nattakornv/storefront-backend/internal/option"
)

// Quote is the resolved price for a product plus an optional
// variant/measurement selection.
type Quote struct {
	UnitPrice       float64 `json:"unitPrice"`
	Discounted      bool    `json:"discounted"`
	DiscountPercent int     `json:"discountPercent"`
}

// ResolvePrice computes the effective unit price for a selection.
// When either selected option carries its own price, the option prices
// are summed and fully replace the product-level sale price; the two
// schemes never stack. Without option pricing the sale price wins over
// the base price.
func ResolvePrice(p Product, variant, measurement *option.Option) Quote {
	variantPrice := optionPrice(variant)
	measurementPrice := optionPrice(measurement)

	var unit float64
	switch {
	case variantPrice != nil || measurementPrice != nil:
		if variantPrice != nil {
			unit += *variantPrice
		}
		if measurementPrice != nil {
			unit += *measurementPrice
		}
	case p.SalePrice != nil:
		unit = *p.SalePrice
	default:
		unit = p.BasePrice
	}

	q := Quote{UnitPrice: unit}
	if p.BasePrice > 0 && unit < p.BasePrice {
		q.Discounted = true
		q.DiscountPercent = int(math.Round(100 * (p.BasePrice - unit) / p.BasePrice))
	}
	return q
}

func optionPrice(o *option.Option) *float64 {
	if o == nil {
		return nil
	}
	return o.Price
}
