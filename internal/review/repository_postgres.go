package review

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	reviewColumns = `review_id, product_id, user_id, rating, comment, created_at`

	listReviewsQuery = `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC, review_id DESC
	`
	getReviewQuery    = `SELECT ` + reviewColumns + ` FROM reviews WHERE review_id = $1`
	insertReviewQuery = `
		INSERT INTO reviews (product_id, user_id, rating, comment, created_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING ` + reviewColumns + `
	`
	deleteReviewQuery = `DELETE FROM reviews WHERE review_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByProduct(productID int) ([]Review, error) {
	rows, err := r.db.Query(listReviewsQuery, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(reviewID int) (Review, error) {
	rv, err := scanReview(r.db.QueryRow(getReviewQuery, reviewID))
	if err == sql.ErrNoRows {
		return Review{}, ErrNotFound
	}
	return rv, err
}

func (r *PostgresRepository) Create(rv Review) (Review, error) {
	return scanReview(r.db.QueryRow(insertReviewQuery,
		rv.ProductID, rv.UserID, rv.Rating, rv.Comment, rv.CreatedAt))
}

func (r *PostgresRepository) Delete(reviewID int) error {
	res, err := r.db.Exec(deleteReviewQuery, reviewID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (Review, error) {
	var (
		rv        Review
		comment   sql.NullString
		createdAt sql.NullString
	)
	err := row.Scan(&rv.ReviewID, &rv.ProductID, &rv.UserID, &rv.Rating, &comment, &createdAt)
	if err != nil {
		return Review{}, err
	}
	rv.Comment = comment.String
	rv.CreatedAt = createdAt.String
	return rv, nil
}
