package related

import (
	"github.com/nattakornv/storefront-backend/internal/catalog"
)

// DefaultLimit is how many related products a detail page shows.
const DefaultLimit = 8

type Service struct {
	repo    Repository
	catalog catalog.ServiceInterface
}

func NewService(repo Repository, cat catalog.ServiceInterface) *Service {
	return &Service{repo: repo, catalog: cat}
}

// List returns products related to the given one, same category first.
func (s *Service) List(productID, limit int) ([]catalog.Product, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	ids, err := s.repo.RelatedIDs(productID, limit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	return s.catalog.ListByIDs(ids)
}
