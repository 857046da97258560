package domain

import "context"

// SeekerProfile is 1:1 with a seeker-role user; ID doubles as the foreign
// key to users.
type SeekerProfile struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Skills     *string `json:"skills,omitempty"`
	Experience *string `json:"experience,omitempty"`
	Education  *string `json:"education,omitempty"`
	ResumeLink *string `json:"resume_link,omitempty"`
}

// EmployerProfile is 1:1 with an employer-role user.
type EmployerProfile struct {
	ID                 string  `json:"id"`
	CompanyName        string  `json:"company_name"`
	CompanyDescription *string `json:"company_description,omitempty"`
	Website            *string `json:"website,omitempty"`
	Location           *string `json:"location,omitempty"`
}

type SeekerProfileRepository interface {
	GetByID(ctx context.Context, id string) (*SeekerProfile, error)
	Upsert(ctx context.Context, profile *SeekerProfile) error
}

type EmployerProfileRepository interface {
	GetByID(ctx context.Context, id string) (*EmployerProfile, error)
	Upsert(ctx context.Context, profile *EmployerProfile) error
}

type SeekerUsecase interface {
	GetProfile(ctx context.Context, userID string) (*SeekerProfile, error)
	UpdateProfile(ctx context.Context, userID string, profile *SeekerProfile) (*SeekerProfile, error)
}

type EmployerUsecase interface {
	GetProfile(ctx context.Context, userID string) (*EmployerProfile, error)
	UpdateProfile(ctx context.Context, userID string, profile *EmployerProfile) (*EmployerProfile, error)
}
