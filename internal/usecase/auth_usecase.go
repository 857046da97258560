package usecase

import (
	"context"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/password"
	"go-jobportal-backend/pkg/token"

	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

// Register creates the user and its role-matched profile as one atomic pair.
// A duplicate email surfaces as Conflict with nothing written.
func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, apperror.BadRequest("Role must be seeker, employer or admin")
	}
	if in.Email == "" || in.Password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(in.Email),
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    time.Now(),
	}

	var seeker *domain.SeekerProfile
	var employer *domain.EmployerProfile
	switch in.Role {
	case domain.RoleSeeker:
		fullName := in.FullName
		if fullName == "" {
			fullName = "New User"
		}
		seeker = &domain.SeekerProfile{ID: user.ID, FullName: fullName}
	case domain.RoleEmployer:
		companyName := in.CompanyName
		if companyName == "" {
			companyName = "New Company"
		}
		employer = &domain.EmployerProfile{ID: user.ID, CompanyName: companyName}
	}
	// Admins carry no profile

	if err := u.userRepo.CreateWithProfile(ctx, user, seeker, employer); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a bearer token. Unknown email
// and wrong password are indistinguishable to the caller.
func (u *authUsecase) Login(ctx context.Context, email, pw string) (string, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return "", "", apperror.Unauthorized("Incorrect email or password")
	}
	if !password.Verify(pw, user.PasswordHash) {
		return "", "", apperror.Unauthorized("Incorrect email or password")
	}

	signed, err := u.tokens.Issue(user.Email, user.Role, time.Now())
	if err != nil {
		return "", "", apperror.Internal(err)
	}
	return signed, user.Role, nil
}

// GetCurrentUser resolves a trusted token subject to the current user row.
// Role always comes from here, never from the token claim, so a stale token
// cannot carry a drifted role.
func (u *authUsecase) GetCurrentUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.Unauthorized("Invalid token")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
