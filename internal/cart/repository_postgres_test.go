package cart

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestInsert_UniqueViolationIsDuplicateLine(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO cart_lines").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "cart_lines_selection_key"})

	variant := "Red"
	_, err = repo.Insert(Line{UserID: 42, ProductID: 1, Quantity: 1, SelectedVariant: &variant})
	if err != ErrDuplicateLine {
		t.Fatalf("expected ErrDuplicateLine on 23505, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListByUser_ScansNullableColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	cols := []string{"line_id", "user_id", "product_id", "quantity", "selected_variant",
		"selected_measurement", "variant_price", "measurement_price", "created_at", "updated_at"}
	rows := sqlmock.NewRows(cols).
		AddRow(1, 42, 1, 2, "Red", nil, 110.0, nil, "t", "u").
		AddRow(2, 42, 2, 1, nil, `{"label":"1L"}`, nil, nil, "t", "u")
	mock.ExpectQuery("FROM cart_lines").WithArgs(42).WillReturnRows(rows)

	lines, err := repo.ListByUser(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].VariantPrice == nil || *lines[0].VariantPrice != 110 {
		t.Fatalf("expected variant price 110, got %v", lines[0].VariantPrice)
	}
	if lines[0].SelectedMeasurement != nil {
		t.Fatalf("NULL measurement must stay nil, got %v", *lines[0].SelectedMeasurement)
	}
	if got := lines[1].MeasurementLabel(); got == nil || *got != "1L" {
		t.Fatalf("JSON-wrapped measurement must unwrap to '1L', got %v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
