package domain

import (
	"context"
	"time"
)

type Job struct {
	ID          int64      `json:"id"`
	EmployerID  string     `json:"employer_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	JobType     string     `json:"job_type"`
	SalaryRange string     `json:"salary_range"`
	PostedAt    time.Time  `json:"posted_at"`
	ClosingDate *time.Time `json:"closing_date,omitempty"`

	// Joined from the owning employer profile for list responses
	CompanyName string `json:"company_name,omitempty"`
}

// JobUpdate is a partial update; nil fields are left untouched. EmployerID
// is never part of an update: a job's owner is fixed at creation.
type JobUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	JobType     *string    `json:"job_type"`
	SalaryRange *string    `json:"salary_range"`
	ClosingDate *time.Time `json:"closing_date"`
}

// JobFilter holds the public search terms. Empty fields match everything.
type JobFilter struct {
	Title    string
	Location string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	// GetByID returns the job with its employer_id, loaded fresh so
	// ownership checks never run against stale data.
	GetByID(ctx context.Context, id int64) (*Job, error)
	FetchByEmployer(ctx context.Context, employerID string) ([]Job, error)
	Search(ctx context.Context, filter JobFilter) ([]Job, error)
	FetchAll(ctx context.Context) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	// DeleteCascade removes the job and every application under it.
	DeleteCascade(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, employerID string, job *Job) (*Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]Job, error)
	Search(ctx context.Context, filter JobFilter) ([]Job, error)
	UpdateJob(ctx context.Context, employerID string, jobID int64, update JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, employerID string, jobID int64) error
}
