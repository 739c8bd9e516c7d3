package coupon

import (
	"database/sql"

	"github.com/nattakornv/storefront-backend/internal/store"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	couponColumns = `coupon_id, code, discount_type, discount_value, min_order_amount,
		max_discount_amount, valid_from, valid_until, active`

	listCouponsQuery  = `SELECT ` + couponColumns + ` FROM coupons ORDER BY coupon_id`
	getByCodeQuery    = `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`
	insertCouponQuery = `
		INSERT INTO coupons (code, discount_type, discount_value, min_order_amount,
			max_discount_amount, valid_from, valid_until, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING coupon_id
	`
	updateCouponQuery = `
		UPDATE coupons
		SET code=$2, discount_type=$3, discount_value=$4, min_order_amount=$5,
			max_discount_amount=$6, valid_from=$7, valid_until=$8, active=$9
		WHERE coupon_id=$1
	`
	deleteCouponQuery = `DELETE FROM coupons WHERE coupon_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Coupon, error) {
	rows, err := r.db.Query(listCouponsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Coupon, 0)
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByCode(code string) (Coupon, error) {
	c, err := scanCoupon(r.db.QueryRow(getByCodeQuery, code))
	if err == sql.ErrNoRows {
		return Coupon{}, ErrNotFound
	}
	return c, err
}

func (r *PostgresRepository) Create(c Coupon) (Coupon, error) {
	err := r.db.QueryRow(insertCouponQuery,
		c.Code, c.DiscountType, c.DiscountValue, c.MinOrderAmount,
		c.MaxDiscountAmount, c.ValidFrom, c.ValidUntil, c.Active,
	).Scan(&c.ID)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return Coupon{}, ErrCodeExists
		}
		return Coupon{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Update(id int, c Coupon) (Coupon, error) {
	res, err := r.db.Exec(updateCouponQuery,
		id, c.Code, c.DiscountType, c.DiscountValue, c.MinOrderAmount,
		c.MaxDiscountAmount, c.ValidFrom, c.ValidUntil, c.Active,
	)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return Coupon{}, ErrCodeExists
		}
		return Coupon{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Coupon{}, ErrNotFound
	}
	c.ID = id
	return c, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteCouponQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoupon(row rowScanner) (Coupon, error) {
	var (
		c           Coupon
		minOrder    sql.NullFloat64
		maxDiscount sql.NullFloat64
		validUntil  sql.NullTime
	)
	err := row.Scan(&c.ID, &c.Code, &c.DiscountType, &c.DiscountValue,
		&minOrder, &maxDiscount, &c.ValidFrom, &validUntil, &c.Active)
	if err != nil {
		return Coupon{}, err
	}
	if minOrder.Valid {
		c.MinOrderAmount = &minOrder.Float64
	}
	if maxDiscount.Valid {
		c.MaxDiscountAmount = &maxDiscount.Float64
	}
	if validUntil.Valid {
		c.ValidUntil = &validUntil.Time
	}
	return c, nil
}
