package review

// Review is a customer rating for a product. Ratings run 1 to 5.
type Review struct {
	ReviewID  int    `json:"reviewId"`
	ProductID int    `json:"productId"`
	UserID    int    `json:"userId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
