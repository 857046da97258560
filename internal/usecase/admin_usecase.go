package usecase

import (
	"context"

	"go-jobportal-backend/internal/access"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type adminUsecase struct {
	adminRepo domain.AdminRepository
	userRepo  domain.UserRepository
	jobRepo   domain.JobRepository
}

func NewAdminUsecase(adminRepo domain.AdminRepository, userRepo domain.UserRepository, jobRepo domain.JobRepository) domain.AdminUsecase {
	return &adminUsecase{adminRepo: adminRepo, userRepo: userRepo, jobRepo: jobRepo}
}

func (u *adminUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := access.Check(roleFrom(ctx), access.CapUserListAll); err != nil {
		return nil, err
	}
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return users, nil
}

// DeleteUser removes any user and cascades to its profile, jobs and
// applications. Admin bypasses ownership entirely.
func (u *adminUsecase) DeleteUser(ctx context.Context, userID string) error {
	if err := access.Check(roleFrom(ctx), access.CapUserDelete); err != nil {
		return err
	}
	if err := u.userRepo.DeleteCascade(ctx, userID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}

func (u *adminUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	if err := access.Check(roleFrom(ctx), access.CapJobListAll); err != nil {
		return nil, err
	}
	jobs, err := u.jobRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *adminUsecase) DeleteJob(ctx context.Context, jobID int64) error {
	if err := access.Check(roleFrom(ctx), access.CapJobDeleteAny); err != nil {
		return err
	}
	if err := u.jobRepo.DeleteCascade(ctx, jobID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	return nil
}

func (u *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if err := access.Check(roleFrom(ctx), access.CapStatsView); err != nil {
		return nil, err
	}

	stats := &domain.AdminStats{}
	var err error
	if stats.TotalUsers, err = u.adminRepo.CountUsers(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	if stats.TotalJobs, err = u.adminRepo.CountJobs(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	if stats.TotalApplications, err = u.adminRepo.CountApplications(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}
