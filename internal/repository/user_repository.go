package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/registration-service/internal/domain"
)

// ErrDuplicateEmail is returned by Create when the normalized email is
// already taken. The unique index makes the check-and-insert atomic.
var ErrDuplicateEmail = errors.New("email already registered")

// errNoPool surfaces a missing POSTGRES_DSN as a store failure instead of
// a nil-pointer panic on the first query.
var errNoPool = errors.New("postgres pool not configured")

const pgUniqueViolation = "23505"

// UserRepository defines persistence access for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]*domain.User, error)
	CountByStatusSince(ctx context.Context, status domain.Status, since time.Time) (int64, error)
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if r.pool == nil {
		return errNoPool
	}

	const query = `
        INSERT INTO users (name, email, password_hash, location_state, location_city, role, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.LocationState,
		user.LocationCity,
		user.Role,
		user.Status,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	if r.pool == nil {
		return errNoPool
	}

	const query = `
        UPDATE users SET name=$1, email=$2, password_hash=$3, status=$4, updated_at=$5
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Status,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	const query = selectUser + ` WHERE id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	const query = selectUser + ` WHERE email=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

// ListByStatus returns users in the given status, newest registrations
// first, matching the admin review workflow.
func (r *userRepository) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.User, error) {
	if r.pool == nil {
		return nil, errNoPool
	}

	const query = selectUser + ` WHERE status=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

func (r *userRepository) CountByStatusSince(ctx context.Context, status domain.Status, since time.Time) (int64, error) {
	if r.pool == nil {
		return 0, errNoPool
	}

	const query = `SELECT COUNT(*) FROM users WHERE status=$1 AND updated_at >= $2`

	var count int64
	if err := r.pool.QueryRow(ctx, query, status, since).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return errNoPool
	}

	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const selectUser = `
        SELECT id, name, email, password_hash, location_state, location_city, role, status, created_at, updated_at
        FROM users`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *userRepository) scanOne(row rowScanner) (*domain.User, error) {
	var user domain.User
	if err := scanUser(row, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func scanUser(row rowScanner, user *domain.User) error {
	return row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.LocationState,
		&user.LocationCity,
		&user.Role,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
