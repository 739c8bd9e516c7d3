package order

// Order statuses. Fulfilment moves strictly forward; cancelled is
// reachable from any non-terminal status.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Payment statuses. Independent from the fulfilment status: the
// combination (cancelled, paid) is representable and left to
// downstream refund handling.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

var statusTransitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered, StatusCancelled},
}

var paymentTransitions = map[string][]string{
	PaymentPending: {PaymentPaid, PaymentFailed},
	PaymentPaid:    {PaymentRefunded},
}

// CanTransitionStatus reports whether an order may move between the
// two fulfilment statuses.
func CanTransitionStatus(from, to string) bool {
	return contains(statusTransitions[from], to)
}

// CanTransitionPayment reports whether a payment may move between the
// two payment statuses.
func CanTransitionPayment(from, to string) bool {
	return contains(paymentTransitions[from], to)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Order is a placed order. Amounts and line contents are snapshots
// taken at composition time; later catalog or coupon edits never
// change them.
type Order struct {
	ID              int     `json:"orderId"`
	UserID          int     `json:"userId"`
	Subtotal        float64 `json:"subtotal"`
	DiscountAmount  float64 `json:"discountAmount"`
	FinalAmount     float64 `json:"finalAmount"`
	CouponCode      *string `json:"couponCode,omitempty"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"paymentStatus"`
	ShippingAddress string  `json:"shippingAddress"`
	Lines           []Line  `json:"lines"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

// Line is one immutable order line. It never reads the live catalog
// again after creation.
type Line struct {
	ID               int     `json:"orderLineId"`
	OrderID          int     `json:"orderId"`
	ProductID        int     `json:"productId"`
	ProductName      string  `json:"productName"`
	Quantity         int     `json:"quantity"`
	UnitPrice        float64 `json:"unitPrice"`
	VariantLabel     *string `json:"variant,omitempty"`
	MeasurementLabel *string `json:"measurement,omitempty"`
}
