package wishlist

import (
	"database/sql"

	"github.com/nattakornv/storefront-backend/internal/store"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listWishlistQuery   = `SELECT product_id FROM wishlist WHERE user_id = $1 ORDER BY created_at, product_id`
	addWishlistQuery    = `INSERT INTO wishlist (user_id, product_id, created_at) VALUES ($1, $2, $3)`
	removeWishlistQuery = `DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListProductIDs(userID int) ([]int, error) {
	rows, err := r.db.Query(listWishlistQuery, userID)
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

func (r *PostgresRepository) Add(userID, productID int, createdAt string) error {
	_, err := r.db.Exec(addWishlistQuery, userID, productID, createdAt)
	if store.IsUniqueViolation(err) {
		return ErrAlreadyInWishlist
	}
	return err
}

func (r *PostgresRepository) Remove(userID, productID int) error {
	res, err := r.db.Exec(removeWishlistQuery, userID, productID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotInWishlist
	}
	return nil
}
