package user

import (
	"database/sql"

	"github.com/nattakornv/storefront-backend/internal/store"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	userColumns = `user_id, email, password, first_name, last_name, phone, role, main_address_id, created_at, updated_at`

	getUserByIDQuery    = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	getUserByEmailQuery = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	insertUserQuery     = `
		INSERT INTO users (email, password, first_name, last_name, phone, role, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING user_id
	`
	updateUserQuery = `
		UPDATE users
		SET first_name=$2, last_name=$3, phone=$4, main_address_id=$5, updated_at=$6
		WHERE user_id=$1
		RETURNING ` + userColumns + `
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	return r.scanOne(r.db.QueryRow(getUserByIDQuery, id))
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	return r.scanOne(r.db.QueryRow(getUserByEmailQuery, email))
}

func (r *PostgresRepository) Create(u User) (User, error) {
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	err := r.db.QueryRow(insertUserQuery,
		u.Email, u.Password, u.FirstName, u.LastName, u.Phone, u.Role, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Update(id int, u User) (User, error) {
	return r.scanOne(r.db.QueryRow(updateUserQuery,
		id, u.FirstName, u.LastName, u.Phone, u.MainAddressID, u.UpdatedAt))
}

func (r *PostgresRepository) scanOne(row *sql.Row) (User, error) {
	var (
		u             User
		firstName     sql.NullString
		lastName      sql.NullString
		phone         sql.NullString
		mainAddressID sql.NullInt64
		createdAt     sql.NullString
		updatedAt     sql.NullString
	)
	err := row.Scan(&u.ID, &u.Email, &u.Password, &firstName, &lastName, &phone,
		&u.Role, &mainAddressID, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	u.FirstName = firstName.String
	u.LastName = lastName.String
	u.Phone = phone.String
	if mainAddressID.Valid {
		v := int(mainAddressID.Int64)
		u.MainAddressID = &v
	}
	u.CreatedAt = createdAt.String
	u.UpdatedAt = updatedAt.String
	return u, nil
}
