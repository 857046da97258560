package usecase

import (
	"context"

	"go-jobportal-backend/internal/access"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository) domain.ApplicationUsecase {
	return &applicationUsecase{applicationRepo: appRepo, jobRepo: jobRepo}
}

// Apply submits a seeker's application to a job. The per-(job, seeker)
// uniqueness check and the insert are one atomic repository operation, so a
// racing duplicate cannot slip through between them.
//
// Jobs past their closing date still accept applications; the upstream
// system behaves the same way and callers rely on it.
func (uc *applicationUsecase) Apply(ctx context.Context, seekerID string, jobID int64) (*domain.Application, error) {
	if err := access.Check(roleFrom(ctx), access.CapApplicationSubmit); err != nil {
		return nil, err
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	app := &domain.Application{
		JobID:    jobID,
		SeekerID: seekerID,
		Status:   domain.ApplicationStatusApplied,
	}

	created, err := uc.applicationRepo.CreateIfAbsent(ctx, app)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !created {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	app.JobTitle = &job.Title
	return app, nil
}

// ListMine returns the seeker's own applications with joined job titles.
func (uc *applicationUsecase) ListMine(ctx context.Context, seekerID string) ([]domain.Application, error) {
	if err := access.Check(roleFrom(ctx), access.CapApplicationListOwn); err != nil {
		return nil, err
	}
	return uc.applicationRepo.GetBySeekerID(ctx, seekerID)
}

// ListByJob returns the applicants of a job the employer owns.
func (uc *applicationUsecase) ListByJob(ctx context.Context, employerID string, jobID int64) ([]domain.Application, error) {
	if err := access.Check(roleFrom(ctx), access.CapApplicantList); err != nil {
		return nil, err
	}

	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil && err != domain.ErrNotFound {
		return nil, apperror.Internal(err)
	}
	ownerID := ""
	if job != nil {
		ownerID = job.EmployerID
	}
	if err := access.RequireOwner(ownerID, employerID); err != nil {
		return nil, err
	}

	return uc.applicationRepo.GetByJobID(ctx, jobID)
}

// UpdateStatus moves an application along the fixed path
// Applied → Accepted | Rejected. Terminal states never move again, and only
// the employer owning the job may transition its applications.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, employerID string, applicationID int64, status string) error {
	if err := access.Check(roleFrom(ctx), access.CapApplicationTransition); err != nil {
		return err
	}

	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return apperror.BadRequest("Invalid status transition. Must be: Accepted or Rejected")
	}

	app, err := uc.applicationRepo.GetWithOwner(ctx, applicationID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	// Ownership chain: acting user → employer profile → job → application,
	// checked against the employer_id loaded with this request.
	if err := access.RequireOwner(app.JobEmployerID, employerID); err != nil {
		return err
	}

	if app.Status != domain.ApplicationStatusApplied {
		return apperror.BadRequest("Invalid status transition. Application is already " + app.Status)
	}

	updated, err := uc.applicationRepo.UpdateStatusFromApplied(ctx, applicationID, status)
	if err != nil {
		return apperror.Internal(err)
	}
	// A concurrent transition can win between the read above and this
	// update; the guarded UPDATE reports it and the second caller fails the
	// same way a late sequential one would.
	if !updated {
		return apperror.BadRequest("Invalid status transition. Application is no longer Applied")
	}
	return nil
}
