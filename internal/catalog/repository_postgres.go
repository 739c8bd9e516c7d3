package catalog

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"
	"github.com/nattakornv/storefront-backend/internal/option"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `product_id, product_name, product_desc, category, base_price, sale_price,
		variant_options, measurement_options, stock_qty, image_url, created_at, updated_at`

	listProductsQuery = `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC, product_id DESC
	`
	listProductsByCategoryQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE category = $1
		ORDER BY created_at DESC, product_id DESC
	`
	listProductsByIDsQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = ANY($1::int[])
		ORDER BY array_position($1::int[], product_id)
	`
	getProductQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1
	`
	insertProductQuery = `
		INSERT INTO products (product_name, product_desc, category, base_price, sale_price,
			variant_options, measurement_options, stock_qty, image_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING product_id
	`
	updateProductQuery = `
		UPDATE products
		SET product_name=$2, product_desc=$3, category=$4, base_price=$5, sale_price=$6,
			variant_options=$7, measurement_options=$8, stock_qty=$9, image_url=$10, updated_at=$11
		WHERE product_id=$1
	`
	deleteProductQuery = `DELETE FROM products WHERE product_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(category string) ([]Product, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if category == "" {
		rows, err = r.db.Query(listProductsQuery)
	} else {
		rows, err = r.db.Query(listProductsByCategoryQuery, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	rows, err := r.db.Query(listProductsByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(getProductQuery, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	variants, measurements, err := marshalOptions(p)
	if err != nil {
		return Product{}, err
	}
	err = r.db.QueryRow(insertProductQuery,
		p.Name, p.Description, p.Category, p.BasePrice, p.SalePrice,
		variants, measurements, p.StockQty, p.ImageURL, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	variants, measurements, err := marshalOptions(p)
	if err != nil {
		return Product{}, err
	}
	res, err := r.db.Exec(updateProductQuery,
		id, p.Name, p.Description, p.Category, p.BasePrice, p.SalePrice,
		variants, measurements, p.StockQty, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		return Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteProductQuery, id)
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

func scanProduct(row rowScanner) (Product, error) {
	var (
		p            Product
		desc         sql.NullString
		category     sql.NullString
		salePrice    sql.NullFloat64
		variants     []byte
		measurements []byte
		imageURL     sql.NullString
		createdAt    sql.NullString
		updatedAt    sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &desc, &category, &p.BasePrice, &salePrice,
		&variants, &measurements, &p.StockQty, &imageURL, &createdAt, &updatedAt)
	if err != nil {
		return Product{}, err
	}
	if desc.Valid {
		p.Description = desc.String
	}
	if category.Valid {
		p.Category = &category.String
	}
	if salePrice.Valid {
		p.SalePrice = &salePrice.Float64
	}
	if imageURL.Valid {
		p.ImageURL = &imageURL.String
	}
	if createdAt.Valid {
		p.CreatedAt = createdAt.String
	}
	if updatedAt.Valid {
		p.UpdatedAt = updatedAt.String
	}
	// raw option columns may still hold legacy shapes; normalize here
	// so nothing downstream re-inspects them
	p.VariantOptions = option.ParseColumn(variants)
	p.MeasurementOptions = option.ParseColumn(measurements)
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func marshalOptions(p Product) ([]byte, []byte, error) {
	variants, err := json.Marshal(p.VariantOptions)
	if err != nil {
		return nil, nil, err
	}
	measurements, err := json.Marshal(p.MeasurementOptions)
	if err != nil {
		return nil, nil, err
	}
	return variants, measurements, nil
}
