package store

import "database/sql"

// EnsureSchema creates the tables the storefront needs when they are
// missing. Statements are idempotent so the server can run them on
// every start.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT,
			last_name TEXT,
			phone TEXT,
			role TEXT NOT NULL DEFAULT 'customer',
			main_address_id INT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			product_name TEXT NOT NULL,
			product_desc TEXT,
			category TEXT,
			base_price NUMERIC NOT NULL DEFAULT 0,
			sale_price NUMERIC,
			variant_options JSONB,
			measurement_options JSONB,
			stock_qty INT NOT NULL DEFAULT 0,
			image_url TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS addresses (
			address_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			address_name TEXT,
			phone TEXT,
			address_desc TEXT NOT NULL,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS cart_lines (
			line_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			quantity INT NOT NULL,
			selected_variant TEXT,
			selected_measurement TEXT,
			variant_price NUMERIC,
			measurement_price NUMERIC,
			created_at TEXT,
			updated_at TEXT
		)`,
		// two concurrent inserts of the same selection must collide at
		// the store level; NULL labels are folded to '' so they compare
		// equal in the index
		`CREATE UNIQUE INDEX IF NOT EXISTS cart_lines_selection_key
			ON cart_lines (user_id, product_id,
				COALESCE(selected_variant, ''),
				COALESCE(selected_measurement, ''))`,
		`CREATE TABLE IF NOT EXISTS coupons (
			coupon_id SERIAL PRIMARY KEY,
			code TEXT UNIQUE NOT NULL,
			discount_type TEXT NOT NULL,
			discount_value NUMERIC NOT NULL,
			min_order_amount NUMERIC,
			max_discount_amount NUMERIC,
			valid_from TIMESTAMPTZ NOT NULL DEFAULT now(),
			valid_until TIMESTAMPTZ,
			active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			subtotal NUMERIC NOT NULL DEFAULT 0,
			discount_amount NUMERIC NOT NULL DEFAULT 0,
			final_amount NUMERIC NOT NULL DEFAULT 0,
			coupon_code TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			payment_status TEXT NOT NULL DEFAULT 'pending',
			shipping_address TEXT NOT NULL,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_lines (
			order_line_id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(order_id),
			product_id INT NOT NULL,
			product_name TEXT NOT NULL,
			quantity INT NOT NULL,
			unit_price NUMERIC NOT NULL,
			variant_label TEXT,
			measurement_label TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS wishlist (
			user_id INT NOT NULL,
			product_id INT NOT NULL,
			created_at TEXT,
			PRIMARY KEY (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			review_id SERIAL PRIMARY KEY,
			product_id INT NOT NULL,
			user_id INT NOT NULL,
			rating INT NOT NULL,
			comment TEXT,
			created_at TEXT
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
