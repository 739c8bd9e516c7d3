package order

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	orderColumns = `order_id, user_id, subtotal, discount_amount, final_amount, coupon_code,
		status, payment_status, shipping_address, created_at, updated_at`
	lineColumns = `order_line_id, order_id, product_id, product_name, quantity, unit_price,
		variant_label, measurement_label`

	insertOrderQuery = `
		INSERT INTO orders (user_id, subtotal, discount_amount, final_amount, coupon_code,
			status, payment_status, shipping_address, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING order_id
	`
	insertLineQuery = `
		INSERT INTO order_lines (order_id, product_id, product_name, quantity, unit_price,
			variant_label, measurement_label)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING order_line_id
	`
	getOrderQuery        = `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`
	listOrdersByUserQuery = `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, order_id DESC
	`
	listLinesQuery = `SELECT ` + lineColumns + ` FROM order_lines WHERE order_id = $1 ORDER BY order_line_id`
	updateStatusQuery = `
		UPDATE orders SET status = $2, updated_at = $3 WHERE order_id = $1
		RETURNING ` + orderColumns + `
	`
	updatePaymentStatusQuery = `
		UPDATE orders SET payment_status = $2, updated_at = $3 WHERE order_id = $1
		RETURNING ` + orderColumns + `
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create writes the order and its lines in one transaction so a
// half-written order can never be observed.
func (r *PostgresRepository) Create(ord Order) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	err = tx.QueryRow(insertOrderQuery,
		ord.UserID, ord.Subtotal, ord.DiscountAmount, ord.FinalAmount, ord.CouponCode,
		ord.Status, ord.PaymentStatus, ord.ShippingAddress, ord.CreatedAt, ord.UpdatedAt,
	).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}

	for i := range ord.Lines {
		ord.Lines[i].OrderID = ord.ID
		err = tx.QueryRow(insertLineQuery,
			ord.ID, ord.Lines[i].ProductID, ord.Lines[i].ProductName,
			ord.Lines[i].Quantity, ord.Lines[i].UnitPrice,
			ord.Lines[i].VariantLabel, ord.Lines[i].MeasurementLabel,
		).Scan(&ord.Lines[i].ID)
		if err != nil {
			return Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(getOrderQuery, id))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	ord.Lines, err = r.listLines(id)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(listOrdersByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Lines, err = r.listLines(out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *PostgresRepository) UpdateStatus(id int, status, updatedAt string) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(updateStatusQuery, id, status, updatedAt))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return ord, err
}

func (r *PostgresRepository) UpdatePaymentStatus(id int, paymentStatus, updatedAt string) (Order, error) {
	ord, err := scanOrder(r.db.QueryRow(updatePaymentStatusQuery, id, paymentStatus, updatedAt))
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return ord, err
}

func (r *PostgresRepository) listLines(orderID int) ([]Line, error) {
	rows, err := r.db.Query(listLinesQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Line, 0)
	for rows.Next() {
		var (
			l           Line
			variant     sql.NullString
			measurement sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.ProductName,
			&l.Quantity, &l.UnitPrice, &variant, &measurement); err != nil {
			return nil, err
		}
		if variant.Valid {
			l.VariantLabel = &variant.String
		}
		if measurement.Valid {
			l.MeasurementLabel = &measurement.String
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		ord        Order
		couponCode sql.NullString
		createdAt  sql.NullString
		updatedAt  sql.NullString
	)
	err := row.Scan(&ord.ID, &ord.UserID, &ord.Subtotal, &ord.DiscountAmount, &ord.FinalAmount,
		&couponCode, &ord.Status, &ord.PaymentStatus, &ord.ShippingAddress, &createdAt, &updatedAt)
	if err != nil {
		return Order{}, err
	}
	if couponCode.Valid {
		ord.CouponCode = &couponCode.String
	}
	ord.CreatedAt = createdAt.String
	ord.UpdatedAt = updatedAt.String
	return ord, nil
}
