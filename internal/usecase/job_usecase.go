package usecase

import (
	"context"

	"go-jobportal-backend/internal/access"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerProfileRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerProfileRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, employerRepo: employerRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, employerID string, job *domain.Job) (*domain.Job, error) {
	if err := access.Check(roleFrom(ctx), access.CapJobCreate); err != nil {
		return nil, err
	}

	// The owning profile is loaded fresh in this request; its existence is
	// what entitles the user to post.
	profile, err := u.employerRepo.GetByID(ctx, employerID)
	if err != nil {
		return nil, apperror.NotFound("Employer profile not found")
	}

	if job.Title == "" {
		return nil, apperror.BadRequest("Title is required")
	}

	job.EmployerID = employerID
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	job.CompanyName = profile.CompanyName
	return job, nil
}

func (u *jobUsecase) ListByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	if err := access.Check(roleFrom(ctx), access.CapJobListOwn); err != nil {
		return nil, err
	}
	return u.jobRepo.FetchByEmployer(ctx, employerID)
}

// Search is the public job listing; it runs without authentication and
// exposes nothing beyond the posting and its company name.
func (u *jobUsecase) Search(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	return u.jobRepo.Search(ctx, filter)
}

// UpdateJob applies a partial update to a job the employer owns. Missing and
// non-owned jobs are both Forbidden, so a non-owner learns nothing about
// whether the job exists.
func (u *jobUsecase) UpdateJob(ctx context.Context, employerID string, jobID int64, update domain.JobUpdate) (*domain.Job, error) {
	if err := access.Check(roleFrom(ctx), access.CapJobUpdate); err != nil {
		return nil, err
	}

	job, err := u.loadOwnedJob(ctx, employerID, jobID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		job.Title = *update.Title
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	if update.Location != nil {
		job.Location = *update.Location
	}
	if update.JobType != nil {
		job.JobType = *update.JobType
	}
	if update.SalaryRange != nil {
		job.SalaryRange = *update.SalaryRange
	}
	if update.ClosingDate != nil {
		job.ClosingDate = update.ClosingDate
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, employerID string, jobID int64) error {
	if err := access.Check(roleFrom(ctx), access.CapJobDelete); err != nil {
		return err
	}

	if _, err := u.loadOwnedJob(ctx, employerID, jobID); err != nil {
		return err
	}

	if err := u.jobRepo.DeleteCascade(ctx, jobID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.Forbidden("Not authorized")
		}
		return apperror.Internal(err)
	}
	return nil
}

// loadOwnedJob fetches the job and verifies ownership against the freshly
// loaded employer_id.
func (u *jobUsecase) loadOwnedJob(ctx context.Context, employerID string, jobID int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
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
	return job, nil
}
