package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// User roles. Closed set: no dynamic roles, and a user's role never changes
// after registration.
const (
	RoleSeeker   = "seeker"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)

func ValidRole(role string) bool {
	return role == RoleSeeker || role == RoleEmployer || role == RoleAdmin
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterInput carries the registration payload. FullName seeds the seeker
// profile, CompanyName the employer profile; the matching profile row is
// created in the same transaction as the user.
type RegisterInput struct {
	Email       string
	Password    string
	Role        string
	FullName    string
	CompanyName string
}

type UserRepository interface {
	// CreateWithProfile inserts the user and its role-matched profile as one
	// atomic unit. A duplicate email fails the whole pair with a conflict.
	CreateWithProfile(ctx context.Context, user *User, seeker *SeekerProfile, employer *EmployerProfile) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	// DeleteCascade removes the user plus its profile, owned jobs and all
	// applications under them in a single transaction. No orphans survive.
	DeleteCascade(ctx context.Context, id string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (token string, role string, err error)
	GetCurrentUser(ctx context.Context, email string) (*User, error)
}
