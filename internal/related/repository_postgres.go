package related

import (
	"database/sql"

	"github.com/nattakornv/storefront-backend/internal/catalog"
)

// Repository resolves the ids of products related to a source product.
type Repository interface {
	RelatedIDs(productID, limit int) ([]int, error)
}

type PostgresRepository struct {
	db *sql.DB
}

const (
	getCategoryQuery = `SELECT category FROM products WHERE product_id = $1`

	sameCategoryQuery = `
		SELECT product_id
		FROM products
		WHERE product_id <> $1 AND category = $2
		ORDER BY created_at DESC, product_id DESC
		LIMIT $3
	`
	backfillQuery = `
		SELECT product_id
		FROM products
		WHERE product_id <> $1 AND category IS DISTINCT FROM $2
		ORDER BY created_at DESC, product_id DESC
		LIMIT $3
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// RelatedIDs prefers products sharing the source's category, newest
// first, and backfills from the rest of the catalog when the category
// cannot fill the limit on its own.
func (r *PostgresRepository) RelatedIDs(productID, limit int) ([]int, error) {
	var category sql.NullString
	if err := r.db.QueryRow(getCategoryQuery, productID).Scan(&category); err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}

	out := make([]int, 0, limit)
	if category.Valid {
		ids, err := r.queryIDs(sameCategoryQuery, productID, category.String, limit)
		if err != nil {
			return nil, err
		}
		out = append(out, ids...)
	}

	if len(out) < limit {
		var cat any
		if category.Valid {
			cat = category.String
		}
		ids, err := r.queryIDs(backfillQuery, productID, cat, limit-len(out))
		if err != nil {
			return nil, err
		}
		out = append(out, ids...)
	}

	return out, nil
}

func (r *PostgresRepository) queryIDs(query string, args ...any) ([]int, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
