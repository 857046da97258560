package usecase_test

import (
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateJob(t *testing.T) {
	t.Run("Should force the owner from the acting employer", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		employerRepo.On("GetByID", mock.Anything, "emp1").
			Return(&domain.EmployerProfile{ID: "emp1", CompanyName: "Acme"}, nil)
		jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).
			Run(func(args mock.Arguments) {
				job := args.Get(1).(*domain.Job)
				assert.Equal(t, "emp1", job.EmployerID)
			})

		job, err := uc.CreateJob(ctxWithRole(domain.RoleEmployer), "emp1", &domain.Job{
			Title: "Engineer", Description: "d", Location: "Remote", JobType: "Full-time", SalaryRange: "$100k",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Acme", job.CompanyName)
	})

	t.Run("Should require an employer profile", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		employerRepo.On("GetByID", mock.Anything, "emp1").Return(nil, domain.ErrNotFound)

		_, err := uc.CreateJob(ctxWithRole(domain.RoleEmployer), "emp1", &domain.Job{Title: "Engineer"})
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should deny seekers", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		_, err := uc.CreateJob(ctxWithRole(domain.RoleSeeker), "u1", &domain.Job{Title: "Engineer"})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestUpdateJob(t *testing.T) {
	title := "Senior Engineer"

	t.Run("Should apply only the provided fields", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: "emp1", Title: "Engineer", Location: "Remote"}, nil)
		jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.UpdateJob(ctxWithRole(domain.RoleEmployer), "emp1", 1, domain.JobUpdate{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, "Senior Engineer", job.Title)
		assert.Equal(t, "Remote", job.Location)
	})

	t.Run("Should return Forbidden for a job owned by someone else", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: "emp1"}, nil)

		_, err := uc.UpdateJob(ctxWithRole(domain.RoleEmployer), "emp2", 1, domain.JobUpdate{Title: &title})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
		jobRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should return Forbidden for a missing job as well", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		jobRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateJob(ctxWithRole(domain.RoleEmployer), "emp1", 99, domain.JobUpdate{Title: &title})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 403, appErr.Code)
	})
}

func TestDeleteJob(t *testing.T) {
	t.Run("Should cascade-delete an owned job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: "emp1"}, nil)
		jobRepo.On("DeleteCascade", mock.Anything, int64(1)).Return(nil)

		err := uc.DeleteJob(ctxWithRole(domain.RoleEmployer), "emp1", 1)
		assert.NoError(t, err)
		jobRepo.AssertExpectations(t)
	})

	t.Run("Should refuse to delete a non-owned job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: "emp1"}, nil)

		err := uc.DeleteJob(ctxWithRole(domain.RoleEmployer), "emp2", 1)
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "DeleteCascade")
	})
}

func TestSearchJobs(t *testing.T) {
	t.Run("Should pass the filter through without authentication", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		employerRepo := new(MockEmployerProfileRepo)
		uc := usecase.NewJobUsecase(jobRepo, employerRepo)

		filter := domain.JobFilter{Location: "Remote"}
		jobRepo.On("Search", mock.Anything, filter).
			Return([]domain.Job{{ID: 1, Title: "Engineer", CompanyName: "Acme"}}, nil)

		jobs, err := uc.Search(ctxWithRole(""), filter)
		assert.NoError(t, err)
		assert.Len(t, jobs, 1)
		assert.Equal(t, "Acme", jobs[0].CompanyName)
	})
}
