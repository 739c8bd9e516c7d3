package address

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	addressColumns = `address_id, user_id, address_name, phone, address_desc, created_at, updated_at`

	listAddressesQuery = `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY address_id`
	getAddressQuery    = `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 AND address_id = $2`
	insertAddressQuery = `
		INSERT INTO addresses (user_id, address_name, phone, address_desc, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING ` + addressColumns + `
	`
	updateAddressQuery = `
		UPDATE addresses
		SET address_name = $3, phone = $4, address_desc = $5, updated_at = $6
		WHERE user_id = $1 AND address_id = $2
		RETURNING ` + addressColumns + `
	`
	deleteAddressQuery = `DELETE FROM addresses WHERE user_id = $1 AND address_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID int) ([]Address, error) {
	rows, err := r.db.Query(listAddressesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(userID, addressID int) (Address, error) {
	a, err := scanAddress(r.db.QueryRow(getAddressQuery, userID, addressID))
	if err == sql.ErrNoRows {
		return Address{}, ErrNotFound
	}
	return a, err
}

func (r *PostgresRepository) Create(a Address) (Address, error) {
	return scanAddress(r.db.QueryRow(insertAddressQuery,
		a.UserID, a.AddressName, a.Phone, a.AddressDesc, a.CreatedAt, a.UpdatedAt))
}

func (r *PostgresRepository) Update(a Address) (Address, error) {
	out, err := scanAddress(r.db.QueryRow(updateAddressQuery,
		a.UserID, a.AddressID, a.AddressName, a.Phone, a.AddressDesc, a.UpdatedAt))
	if err == sql.ErrNoRows {
		return Address{}, ErrNotFound
	}
	return out, err
}

func (r *PostgresRepository) Delete(userID, addressID int) error {
	res, err := r.db.Exec(deleteAddressQuery, userID, addressID)
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

func scanAddress(row rowScanner) (Address, error) {
	var (
		a         Address
		name      sql.NullString
		phone     sql.NullString
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	err := row.Scan(&a.AddressID, &a.UserID, &name, &phone, &a.AddressDesc, &createdAt, &updatedAt)
	if err != nil {
		return Address{}, err
	}
	a.AddressName = name.String
	a.Phone = phone.String
	a.CreatedAt = createdAt.String
	a.UpdatedAt = updatedAt.String
	return a, nil
}
