package coupon

import "time"

const (
	TypePercentage = "percentage"
	TypeFixed      = "fixed"
)

type Coupon struct {
	ID                int        `json:"couponId"`
	Code              string     `json:"code"`
	DiscountType      string     `json:"discountType"`
	DiscountValue     float64    `json:"discountValue"`
	MinOrderAmount    *float64   `json:"minOrderAmount,omitempty"`
	MaxDiscountAmount *float64   `json:"maxDiscountAmount,omitempty"`
	ValidFrom         time.Time  `json:"validFrom"`
	ValidUntil        *time.Time `json:"validUntil,omitempty"`
	Active            bool       `json:"active"`
}
