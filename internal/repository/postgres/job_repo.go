package postgres

import (
	"context"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// Create inserts a new job posting
func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (employer_id, title, description, location, job_type, salary_range, posted_at, closing_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	job.PostedAt = time.Now()

	return r.db.QueryRow(ctx, query,
		job.EmployerID,
		job.Title,
		job.Description,
		job.Location,
		job.JobType,
		job.SalaryRange,
		job.PostedAt,
		job.ClosingDate,
	).Scan(&job.ID)
}

// GetByID retrieves a job with its owner and joined company name. The
// employer_id comes back with the row so ownership checks run against the
// current state, never a cached reference.
func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location,
		       j.job_type, j.salary_range, j.posted_at, j.closing_date,
		       COALESCE(e.company_name, 'Unknown') as company_name
		FROM jobs j
		LEFT JOIN employer_profiles e ON j.employer_id = e.id
		WHERE j.id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
		&job.JobType, &job.SalaryRange, &job.PostedAt, &job.ClosingDate,
		&job.CompanyName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) FetchByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location,
		       j.job_type, j.salary_range, j.posted_at, j.closing_date,
		       COALESCE(e.company_name, 'Unknown') as company_name
		FROM jobs j
		LEFT JOIN employer_profiles e ON j.employer_id = e.id
		WHERE j.employer_id = $1
		ORDER BY j.posted_at DESC`

	return r.queryJobs(ctx, query, employerID)
}

// Search returns jobs matching the public filter terms with a contains
// match, each joined with the posting company's name.
func (r *jobRepo) Search(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location,
		       j.job_type, j.salary_range, j.posted_at, j.closing_date,
		       COALESCE(e.company_name, 'Unknown') as company_name
		FROM jobs j
		LEFT JOIN employer_profiles e ON j.employer_id = e.id
		WHERE ($1 = '' OR j.title ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR j.location ILIKE '%' || $2 || '%')
		ORDER BY j.posted_at DESC`

	return r.queryJobs(ctx, query, filter.Title, filter.Location)
}

func (r *jobRepo) FetchAll(ctx context.Context) ([]domain.Job, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location,
		       j.job_type, j.salary_range, j.posted_at, j.closing_date,
		       COALESCE(e.company_name, 'Unknown') as company_name
		FROM jobs j
		LEFT JOIN employer_profiles e ON j.employer_id = e.id
		ORDER BY j.posted_at DESC`

	return r.queryJobs(ctx, query)
}

// Update writes the mutable job fields. employer_id is deliberately not in
// the SET list: a job's owner is fixed at creation.
func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, location = $4, job_type = $5,
		    salary_range = $6, closing_date = $7
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location,
		job.JobType, job.SalaryRange, job.ClosingDate,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCascade removes the job and its applications in one transaction.
func (r *jobRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id); err != nil {
		return apperror.Internal(err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
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

func (r *jobRepo) queryJobs(ctx context.Context, query string, args ...interface{}) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
			&job.JobType, &job.SalaryRange, &job.PostedAt, &job.ClosingDate,
			&job.CompanyName,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
