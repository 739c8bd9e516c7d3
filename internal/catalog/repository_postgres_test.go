package catalog

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var productRows = []string{
	"product_id", "product_name", "product_desc", "category", "base_price", "sale_price",
	"variant_options", "measurement_options", "stock_qty", "image_url", "created_at", "updated_at",
}

func TestGetByID_NormalizesRawOptions(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// mixed legacy shapes in the jsonb column: bare string, object,
	// JSON-encoded string, junk entry
	variants := `["Red", {"label":"Blue","price":"25"}, "  ", 42]`
	measurements := `[{"label":"500ml","price":30}]`
	rows := sqlmock.NewRows(productRows).
		AddRow(7, "Shampoo", "desc", "Hygiene care", 100.0, 80.0,
			[]byte(variants), []byte(measurements), 12, "/img/7.png", "t", "u")
	mock.ExpectQuery("FROM products").WithArgs(7).WillReturnRows(rows)

	p, err := repo.GetByID(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.VariantOptions) != 2 {
		t.Fatalf("expected 2 normalized variants, got %d (%+v)", len(p.VariantOptions), p.VariantOptions)
	}
	if p.VariantOptions[0].Label != "Red" || p.VariantOptions[0].Price != nil {
		t.Fatalf("unexpected first variant %+v", p.VariantOptions[0])
	}
	if p.VariantOptions[1].Label != "Blue" || p.VariantOptions[1].Price == nil || *p.VariantOptions[1].Price != 25 {
		t.Fatalf("unexpected second variant %+v", p.VariantOptions[1])
	}
	if len(p.MeasurementOptions) != 1 || *p.MeasurementOptions[0].Price != 30 {
		t.Fatalf("unexpected measurements %+v", p.MeasurementOptions)
	}
	if p.SalePrice == nil || *p.SalePrice != 80 {
		t.Fatalf("expected sale price 80, got %v", p.SalePrice)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM products").WithArgs(99).WillReturnRows(sqlmock.NewRows(productRows))

	if _, err := repo.GetByID(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestList_ByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(productRows).
		AddRow(1, "A", nil, "Cat snacks", 10.0, nil, []byte(`[]`), []byte(`[]`), 3, nil, "t", "u").
		AddRow(2, "B", nil, "Cat snacks", 20.0, nil, []byte(`[]`), []byte(`[]`), 5, nil, "t", "u")
	mock.ExpectQuery("WHERE category").WithArgs("Cat snacks").WillReturnRows(rows)

	products, err := repo.List("Cat snacks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].SalePrice != nil {
		t.Fatalf("NULL sale price must stay nil, got %v", products[0].SalePrice)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
