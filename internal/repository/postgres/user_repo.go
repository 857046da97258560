package postgres

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// CreateWithProfile inserts the user row and, depending on role, the seeker
// or employer profile row in one transaction. Either both commit or neither.
func (r *userRepo) CreateWithProfile(ctx context.Context, user *domain.User, seeker *domain.SeekerProfile, employer *domain.EmployerProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO users (id, email, password_hash, role, created_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err = tx.Exec(ctx, query, user.ID, user.Email, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Email already registered")
		}
		return apperror.Internal(err)
	}

	switch {
	case seeker != nil:
		_, err = tx.Exec(ctx,
			`INSERT INTO seeker_profiles (id, full_name) VALUES ($1, $2)`,
			seeker.ID, seeker.FullName)
	case employer != nil:
		_, err = tx.Exec(ctx,
			`INSERT INTO employer_profiles (id, company_name) VALUES ($1, $2)`,
			employer.ID, employer.CompanyName)
	}
	if err != nil {
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, role, created_at FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, role, created_at FROM users WHERE lower(email) = lower($1)`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, email, password_hash, role, created_at FROM users ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// DeleteCascade removes a user and everything hanging off it: the profile
// row, owned jobs, and all applications under either side. Runs in one
// transaction so a concurrent update never observes a half-deleted graph.
func (r *userRepo) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	// Applications under the user's jobs (employer side)
	_, err = tx.Exec(ctx,
		`DELETE FROM applications WHERE job_id IN (SELECT id FROM jobs WHERE employer_id = $1)`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	// Applications made by the user (seeker side)
	if _, err = tx.Exec(ctx, `DELETE FROM applications WHERE seeker_id = $1`, id); err != nil {
		return apperror.Internal(err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM jobs WHERE employer_id = $1`, id); err != nil {
		return apperror.Internal(err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM seeker_profiles WHERE id = $1`, id); err != nil {
		return apperror.Internal(err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM employer_profiles WHERE id = $1`, id); err != nil {
		return apperror.Internal(err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
