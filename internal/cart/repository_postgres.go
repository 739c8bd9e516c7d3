package cart

import (
	"database/sql"

	"github.com/nattakornv/storefront-backend/internal/store"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	lineColumns = `line_id, user_id, product_id, quantity, selected_variant, selected_measurement,
		variant_price, measurement_price, created_at, updated_at`

	listLinesByUserQuery = `
		SELECT ` + lineColumns + `
		FROM cart_lines
		WHERE user_id = $1
		ORDER BY created_at, line_id
	`
	listLinesByUserAndProductQuery = `
		SELECT ` + lineColumns + `
		FROM cart_lines
		WHERE user_id = $1 AND product_id = $2
		ORDER BY line_id
	`
	getLineQuery = `
		SELECT ` + lineColumns + `
		FROM cart_lines
		WHERE line_id = $1
	`
	insertLineQuery = `
		INSERT INTO cart_lines (user_id, product_id, quantity, selected_variant, selected_measurement,
			variant_price, measurement_price, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING line_id
	`
	updateLineQuantityQuery = `
		UPDATE cart_lines
		SET quantity = $2, updated_at = $3
		WHERE line_id = $1
		RETURNING ` + lineColumns + `
	`
	deleteLineQuery   = `DELETE FROM cart_lines WHERE line_id = $1`
	clearByUserQuery  = `DELETE FROM cart_lines WHERE user_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID int) ([]Line, error) {
	rows, err := r.db.Query(listLinesByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLines(rows)
}

func (r *PostgresRepository) ListByUserAndProduct(userID, productID int) ([]Line, error) {
	rows, err := r.db.Query(listLinesByUserAndProductQuery, userID, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLines(rows)
}

func (r *PostgresRepository) GetByID(lineID int) (Line, error) {
	l, err := scanLine(r.db.QueryRow(getLineQuery, lineID))
	if err == sql.ErrNoRows {
		return Line{}, ErrNotFound
	}
	return l, err
}

func (r *PostgresRepository) Insert(line Line) (Line, error) {
	err := r.db.QueryRow(insertLineQuery,
		line.UserID, line.ProductID, line.Quantity,
		line.SelectedVariant, line.SelectedMeasurement,
		line.VariantPrice, line.MeasurementPrice,
		line.CreatedAt, line.UpdatedAt,
	).Scan(&line.ID)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return Line{}, ErrDuplicateLine
		}
		return Line{}, err
	}
	return line, nil
}

func (r *PostgresRepository) UpdateQuantity(lineID, quantity int, updatedAt string) (Line, error) {
	l, err := scanLine(r.db.QueryRow(updateLineQuantityQuery, lineID, quantity, updatedAt))
	if err == sql.ErrNoRows {
		return Line{}, ErrNotFound
	}
	return l, err
}

func (r *PostgresRepository) Delete(lineID int) error {
	res, err := r.db.Exec(deleteLineQuery, lineID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) ClearUser(userID int) error {
	_, err := r.db.Exec(clearByUserQuery, userID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLine(row rowScanner) (Line, error) {
	var (
		l                Line
		variant          sql.NullString
		measurement      sql.NullString
		variantPrice     sql.NullFloat64
		measurementPrice sql.NullFloat64
		createdAt        sql.NullString
		updatedAt        sql.NullString
	)
	err := row.Scan(&l.ID, &l.UserID, &l.ProductID, &l.Quantity,
		&variant, &measurement, &variantPrice, &measurementPrice,
		&createdAt, &updatedAt)
	if err != nil {
		return Line{}, err
	}
	if variant.Valid {
		l.SelectedVariant = &variant.String
	}
	if measurement.Valid {
		l.SelectedMeasurement = &measurement.String
	}
	if variantPrice.Valid {
		l.VariantPrice = &variantPrice.Float64
	}
	if measurementPrice.Valid {
		l.MeasurementPrice = &measurementPrice.Float64
	}
	l.CreatedAt = createdAt.String
	l.UpdatedAt = updatedAt.String
	return l, nil
}

func scanLines(rows *sql.Rows) ([]Line, error) {
	out := make([]Line, 0)
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
