package domain

import (
	"context"
	"time"
)

// Application status values. Applied is the only initial state; Accepted and
// Rejected are terminal. The only legal transitions are
// Applied → Accepted and Applied → Rejected.
const (
	ApplicationStatusApplied  = "Applied"
	ApplicationStatusAccepted = "Accepted"
	ApplicationStatusRejected = "Rejected"
)

// Application is a seeker's application to a job. At most one exists per
// (job, seeker) pair, enforced by a unique index at the storage layer.
type Application struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"job_id"`
	SeekerID  string    `json:"seeker_id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`

	// Joined data for list responses
	JobTitle         *string `json:"job_title,omitempty"`
	SeekerName       *string `json:"seeker_name,omitempty"`
	SeekerEmail      *string `json:"seeker_email,omitempty"`
	SeekerSkills     *string `json:"seeker_skills,omitempty"`
	SeekerEducation  *string `json:"seeker_education,omitempty"`
	SeekerExperience *string `json:"seeker_experience,omitempty"`
	SeekerResumeLink *string `json:"seeker_resume_link,omitempty"`
}

// ApplicationWithOwner pairs an application with the employer that owns its
// job, loaded in one query for ownership checks.
type ApplicationWithOwner struct {
	Application
	JobEmployerID string `json:"-"`
}

type ApplicationRepository interface {
	// CreateIfAbsent atomically inserts the application unless a row for the
	// same (job, seeker) pair already exists. The check and the insert are
	// one storage operation, so two concurrent submissions cannot both
	// succeed; the loser observes created == false with no row written.
	CreateIfAbsent(ctx context.Context, app *Application) (created bool, err error)
	GetWithOwner(ctx context.Context, id int64) (*ApplicationWithOwner, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetBySeekerID(ctx context.Context, seekerID string) ([]Application, error)
	// UpdateStatusFromApplied moves the application to status only if it is
	// still in Applied, reporting whether a row changed. Concurrent
	// transitions serialize here: the second caller sees updated == false.
	UpdateStatusFromApplied(ctx context.Context, id int64, status string) (updated bool, err error)
}

type ApplicationUsecase interface {
	// Seeker operations
	Apply(ctx context.Context, seekerID string, jobID int64) (*Application, error)
	ListMine(ctx context.Context, seekerID string) ([]Application, error)

	// Employer operations
	ListByJob(ctx context.Context, employerID string, jobID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, employerID string, applicationID int64, status string) error
}
