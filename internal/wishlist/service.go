package wishlist

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

// Add puts a product on the user's wishlist. The product must exist in
// the catalog at the time it is added.
func (s *Service) Add(userID, productID int) error {
	if _, err := s.catalog.GetByID(productID); err != nil {
		return err
	}
	return s.repo.Add(userID, productID, time.Now().UTC().Format(time.RFC3339))
}

func (s *Service) Remove(userID, productID int) error {
	return s.repo.Remove(userID, productID)
}

// List returns the wishlist as full products, preserving the order the
// ids were saved in. Products removed from the catalog drop out.
func (s *Service) List(userID int) ([]catalog.Product, error) {
	ids, err := s.repo.ListProductIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	return s.catalog.ListByIDs(ids)
}
