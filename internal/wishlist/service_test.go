package wishlist

import (
	"testing"

	"github.com/nattakornv/storefront-backend/internal/catalog"
)

func seedCatalog() catalog.ServiceInterface {
	return catalog.NewService(catalog.NewInMemoryRepository([]catalog.Product{
		{ID: 1, Name: "Cat Shampoo", BasePrice: 100},
		{ID: 2, Name: "Litter Box", BasePrice: 60},
	}))
}

func TestWishlist_AddListRemove(t *testing.T) {
	service := NewService(NewInMemoryRepository(), seedCatalog())

	if err := service.Add(7, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := service.Add(7, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// adding the same product twice is a conflict
	if err := service.Add(7, 2); err != ErrAlreadyInWishlist {
		t.Fatalf("expected ErrAlreadyInWishlist, got %v", err)
	}

	// unknown products never enter the wishlist
	if err := service.Add(7, 99); err != catalog.ErrNotFound {
		t.Fatalf("expected catalog.ErrNotFound, got %v", err)
	}

	products, err := service.List(7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	// another user's wishlist is empty
	other, _ := service.List(8)
	if len(other) != 0 {
		t.Fatalf("expected empty wishlist for other user, got %d", len(other))
	}

	if err := service.Remove(7, 2); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := service.Remove(7, 2); err != ErrNotInWishlist {
		t.Fatalf("expected ErrNotInWishlist, got %v", err)
	}
}
