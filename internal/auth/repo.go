package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/melodex/melodex/internal/shared"
)

const uniqueViolation = "23505"

// Repository defines persistence operations for user accounts.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, email, nickname, passwordHash string) error
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// FindByEmail fetches a user by email.
func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `
		SELECT user_id, email, nickname, password_hash, birth_date, registered_at
		FROM users
		WHERE email = $1`

	var (
		user         User
		birthDate    pgtype.Date
		registeredAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Nickname, &user.PasswordHash,
		&birthDate, &registeredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("auth: find by email: %w", err)
	}
	if birthDate.Valid {
		d := birthDate.Time
		user.BirthDate = &d
	}
	if registeredAt.Valid {
		user.RegisteredAt = registeredAt.Time
	}
	return &user, nil
}

// Create inserts a new user. A uniqueness violation on email surfaces as
// shared.ErrEmailTaken; the service does not pre-check existence, the
// constraint is the source of truth.
func (r *PGRepository) Create(ctx context.Context, email, nickname, passwordHash string) error {
	const query = `
		INSERT INTO users (email, nickname, password_hash)
		VALUES ($1, $2, $3)`

	if _, err := r.pool.Exec(ctx, query, email, nickname, passwordHash); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return shared.ErrEmailTaken
		}
		return fmt.Errorf("auth: create user: %w", err)
	}
	return nil
}

var _ Repository = (*PGRepository)(nil)
