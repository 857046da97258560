package usecase

import (
	"context"

	"go-jobportal-backend/internal/access"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type seekerUsecase struct {
	profileRepo domain.SeekerProfileRepository
}

func NewSeekerUsecase(profileRepo domain.SeekerProfileRepository) domain.SeekerUsecase {
	return &seekerUsecase{profileRepo: profileRepo}
}

func (u *seekerUsecase) GetProfile(ctx context.Context, userID string) (*domain.SeekerProfile, error) {
	if err := access.Check(roleFrom(ctx), access.CapSeekerProfileView); err != nil {
		return nil, err
	}
	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// UpdateProfile writes the seeker's own profile. The ID is forced from the
// authenticated user so one seeker can never write another's row.
func (u *seekerUsecase) UpdateProfile(ctx context.Context, userID string, profile *domain.SeekerProfile) (*domain.SeekerProfile, error) {
	if err := access.Check(roleFrom(ctx), access.CapSeekerProfileEdit); err != nil {
		return nil, err
	}
	if profile.FullName == "" {
		return nil, apperror.BadRequest("Full name is required")
	}

	profile.ID = userID
	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

type employerUsecase struct {
	profileRepo domain.EmployerProfileRepository
}

func NewEmployerUsecase(profileRepo domain.EmployerProfileRepository) domain.EmployerUsecase {
	return &employerUsecase{profileRepo: profileRepo}
}

func (u *employerUsecase) GetProfile(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	if err := access.Check(roleFrom(ctx), access.CapEmployerProfileView); err != nil {
		return nil, err
	}
	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *employerUsecase) UpdateProfile(ctx context.Context, userID string, profile *domain.EmployerProfile) (*domain.EmployerProfile, error) {
	if err := access.Check(roleFrom(ctx), access.CapEmployerProfileEdit); err != nil {
		return nil, err
	}
	if profile.CompanyName == "" {
		return nil, apperror.BadRequest("Company name is required")
	}

	profile.ID = userID
	if err := u.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// roleFrom reads the authenticated role set by the auth middleware. Missing
// or mistyped values come back empty, which denies everything.
func roleFrom(ctx context.Context) string {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	return role
}
