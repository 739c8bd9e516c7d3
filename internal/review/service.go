package review

import (
	"time"

	"github.com/nattakornv/storefront-backend/internal/catalog"
)

type Service struct {
	repo    Repository
	catalog catalog.ServiceInterface
}

func NewService(repo Repository, cat catalog.ServiceInterface) *Service {
	return &Service{repo: repo, catalog: cat}
}

func (s *Service) ListByProduct(productID int) ([]Review, error) {
	if _, err := s.catalog.GetByID(productID); err != nil {
		return nil, err
	}
	return s.repo.ListByProduct(productID)
}

func (s *Service) Create(userID, productID, rating int, comment string) (Review, error) {
	if rating < 1 || rating > 5 {
		return Review{}, ErrInvalidRating
	}
	if _, err := s.catalog.GetByID(productID); err != nil {
		return Review{}, err
	}
	return s.repo.Create(Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// Delete removes a review, allowed for its author or an admin. A
// foreign review reads as not found rather than forbidden.
func (s *Service) Delete(userID, reviewID int, admin bool) error {
	rv, err := s.repo.GetByID(reviewID)
	if err != nil {
		return err
	}
	if rv.UserID != userID && !admin {
		return ErrNotFound
	}
	return s.repo.Delete(reviewID)
}
