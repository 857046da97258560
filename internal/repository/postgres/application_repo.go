package postgres

import (
	"context"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// CreateIfAbsent inserts the application unless one already exists for the
// same (job_id, seeker_id) pair. The conditional insert rides on the unique
// index over that pair, so two racing submissions resolve to exactly one
// row: the winner scans its new ID, the loser gets no row back.
func (r *applicationRepo) CreateIfAbsent(ctx context.Context, app *domain.Application) (bool, error) {
	query := `
		INSERT INTO applications (job_id, seeker_id, status, applied_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (job_id, seeker_id) DO NOTHING
		RETURNING id`

	app.AppliedAt = time.Now()
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID,
		app.SeekerID,
		app.Status,
		app.AppliedAt,
	).Scan(&app.ID)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetWithOwner retrieves an application together with the employer that owns
// its job, loaded in one query for the ownership check.
func (r *applicationRepo) GetWithOwner(ctx context.Context, id int64) (*domain.ApplicationWithOwner, error) {
	query := `
		SELECT a.id, a.job_id, a.seeker_id, a.status, a.applied_at,
		       j.title as job_title, j.employer_id
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1`

	var app domain.ApplicationWithOwner
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.SeekerID, &app.Status, &app.AppliedAt,
		&app.JobTitle, &app.JobEmployerID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByJobID retrieves all applications for a job with joined seeker data
// for the owning employer's applicant view.
func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.seeker_id, a.status, a.applied_at,
		       j.title as job_title,
		       s.full_name as seeker_name,
		       u.email as seeker_email,
		       s.skills, s.education, s.experience, s.resume_link
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		LEFT JOIN seeker_profiles s ON a.seeker_id = s.id
		LEFT JOIN users u ON a.seeker_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.SeekerID, &app.Status, &app.AppliedAt,
			&app.JobTitle, &app.SeekerName, &app.SeekerEmail,
			&app.SeekerSkills, &app.SeekerEducation, &app.SeekerExperience, &app.SeekerResumeLink,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetBySeekerID retrieves all applications for a seeker with job titles
func (r *applicationRepo) GetBySeekerID(ctx context.Context, seekerID string) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.seeker_id, a.status, a.applied_at,
		       j.title as job_title
		FROM applications a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.seeker_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, seekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.SeekerID, &app.Status, &app.AppliedAt,
			&app.JobTitle,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// UpdateStatusFromApplied moves an application out of Applied. The status
// guard in the WHERE clause is what serializes concurrent transitions: only
// one UPDATE can match, the second caller sees zero rows affected.
func (r *applicationRepo) UpdateStatusFromApplied(ctx context.Context, id int64, status string) (bool, error) {
	query := `UPDATE applications SET status = $2 WHERE id = $1 AND status = $3`
	result, err := r.db.Exec(ctx, query, id, status, domain.ApplicationStatusApplied)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}
