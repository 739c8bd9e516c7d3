package address

// Address is a saved shipping address. Every operation on it is scoped
// to the owning user.
type Address struct {
	AddressID   int    `json:"addressId"`
	UserID      int    `json:"userId"`
	AddressName string `json:"addressName"`
	Phone       string `json:"phone"`
	AddressDesc string `json:"addressDesc"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}
