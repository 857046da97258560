package domain

import "context"

// AdminStats is the aggregate dashboard payload.
type AdminStats struct {
	TotalUsers        int64 `json:"total_users"`
	TotalJobs         int64 `json:"total_jobs"`
	TotalApplications int64 `json:"total_applications"`
}

type AdminRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountJobs(ctx context.Context) (int64, error)
	CountApplications(ctx context.Context) (int64, error)
}

type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, userID string) error
	ListJobs(ctx context.Context) ([]Job, error)
	DeleteJob(ctx context.Context, jobID int64) error
	GetStats(ctx context.Context) (*AdminStats, error)
}
