package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint.
const uniqueViolation = "23505"

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, role, age, primary_sport, sport_intensity, diet)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.ID, normalizeEmail(user.Email), user.PasswordHash, user.FullName, user.Role,
		user.Age, user.PrimarySport, user.SportIntensity, user.Diet,
	).Scan(&user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%s: %w", user.Email, ErrEmailTaken)
		}
		return err
	}
	return nil
}

const selectUser = `
	SELECT id, email, password_hash, full_name, role, age, primary_sport, sport_intensity, diet, created_at
	FROM users
`

func scanUser(row *sql.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.Role,
		&user.Age,
		&user.PrimarySport,
		&user.SportIntensity,
		&user.Diet,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, selectUser+`WHERE email = $1`, normalizeEmail(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", email, ErrUserNotFound)
	}
	return user, err
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, ErrUserNotFound)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, selectUser+`WHERE id = $1`, parsedID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", id, ErrUserNotFound)
	}
	return user, err
}
