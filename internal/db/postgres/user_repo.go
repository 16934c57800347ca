package postgres

import (
	"LinkUp/internal/core/users"
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user; the id is generated by the database
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, user.Name, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, users.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	query := `
		SELECT id, name, email, password_hash, image, bio, phone_number, address, created_at
		FROM users
		WHERE id = $1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a user by email for credential checks
func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	query := `
		SELECT id, name, email, password_hash, image, bio, phone_number, address, created_at
		FROM users
		WHERE email = $1`

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// UpdateProfile applies the non-nil fields of req and returns the updated row.
// COALESCE keeps unset fields at their current value so partial updates
// need no read-modify-write cycle.
func (r *postgresUserRepo) UpdateProfile(ctx context.Context, id string, req users.UpdateProfileRequest) (*users.User, error) {
	query := `
		UPDATE users
		SET name         = COALESCE($2, name),
		    image        = COALESCE($3, image),
		    bio          = COALESCE($4, bio),
		    phone_number = COALESCE($5, phone_number),
		    address      = COALESCE($6, address)
		WHERE id = $1
		RETURNING id, name, email, password_hash, image, bio, phone_number, address, created_at`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id,
		req.Name, req.Image, req.Bio, req.Phone, req.Address))
}

func (r *postgresUserRepo) scanUser(row *sql.Row) (*users.User, error) {
	user := &users.User{}
	var image, bio, phone, address sql.NullString

	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&image, &bio, &phone, &address, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Image = image.String
	user.Bio = bio.String
	user.Phone = phone.String
	user.Address = address.String

	return user, nil
}
