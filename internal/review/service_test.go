package review

import (
	"testing"

	"github.com/nattakornv/storefront-backend/internal/catalog"
)

func seedCatalog() catalog.ServiceInterface {
	return catalog.NewService(catalog.NewInMemoryRepository([]catalog.Product{
		{ID: 1, Name: "Cat Shampoo", BasePrice: 100},
	}))
}

func TestCreate_ValidatesRatingAndProduct(t *testing.T) {
	service := NewService(NewInMemoryRepository(), seedCatalog())

	for _, bad := range []int{0, -1, 6} {
		if _, err := service.Create(7, 1, bad, ""); err != ErrInvalidRating {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", bad, err)
		}
	}
	if _, err := service.Create(7, 99, 4, ""); err != catalog.ErrNotFound {
		t.Fatalf("expected catalog.ErrNotFound, got %v", err)
	}

	rv, err := service.Create(7, 1, 5, "great for long fur")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rv.Rating != 5 || rv.UserID != 7 {
		t.Fatalf("unexpected review: %+v", rv)
	}

	reviews, err := service.ListByProduct(1)
	if err != nil || len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d (err %v)", len(reviews), err)
	}
}

func TestDelete_OwnerOrAdmin(t *testing.T) {
	service := NewService(NewInMemoryRepository(), seedCatalog())
	rv, err := service.Create(7, 1, 3, "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.Delete(8, rv.ReviewID, false); err != ErrNotFound {
		t.Fatalf("foreign user delete should read as not found, got %v", err)
	}
	if err := service.Delete(8, rv.ReviewID, true); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if err := service.Delete(7, rv.ReviewID, false); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
