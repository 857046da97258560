package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC    domain.EmployerUsecase
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
}

func NewEmployerHandler(protected *gin.RouterGroup, employerUC domain.EmployerUsecase, jobUC domain.JobUsecase, applicationUC domain.ApplicationUsecase) {
	handler := &EmployerHandler{employerUC: employerUC, jobUC: jobUC, applicationUC: applicationUC}

	employer := protected.Group("/employer")
	{
		employer.GET("/profile", handler.GetProfile)
		employer.PUT("/profile", handler.UpdateProfile)
		employer.POST("/jobs", handler.CreateJob)
		employer.GET("/jobs", handler.MyJobs)
		employer.PUT("/jobs/:job_id", handler.UpdateJob)
		employer.DELETE("/jobs/:job_id", handler.DeleteJob)
		employer.GET("/jobs/:job_id/applicants", handler.ViewApplicants)
		employer.PUT("/applications/:app_id/status", handler.UpdateApplicationStatus)
	}
}

type EmployerProfileRequest struct {
	CompanyName        string  `json:"company_name" binding:"required"`
	CompanyDescription *string `json:"company_description"`
	Website            *string `json:"website"`
	Location           *string `json:"location"`
}

type CreateJobRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Location    string     `json:"location" binding:"required"`
	JobType     string     `json:"job_type" binding:"required"`
	SalaryRange string     `json:"salary_range" binding:"required"`
	ClosingDate *time.Time `json:"closing_date"`
}

type UpdateJobRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	JobType     *string    `json:"job_type"`
	SalaryRange *string    `json:"salary_range"`
	ClosingDate *time.Time `json:"closing_date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetProfile godoc
// @Summary      Get own employer profile
// @Tags         employer
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employer/profile [get]
// @Security     BearerAuth
func (h *EmployerHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.employerUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", profile)
}

// UpdateProfile godoc
// @Summary      Update own employer profile
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        profile  body      EmployerProfileRequest  true  "Profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employer/profile [put]
// @Security     BearerAuth
func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	var req EmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.employerUC.UpdateProfile(c.Request.Context(), userID, &domain.EmployerProfile{
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		Website:            req.Website,
		Location:           req.Location,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// CreateJob godoc
// @Summary      Post a new job
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employer/jobs [post]
// @Security     BearerAuth
func (h *EmployerHandler) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job, err := h.jobUC.CreateJob(c.Request.Context(), userID, &domain.Job{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		SalaryRange: req.SalaryRange,
		ClosingDate: req.ClosingDate,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted", job)
}

// MyJobs godoc
// @Summary      List own job postings
// @Tags         employer
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employer/jobs [get]
// @Security     BearerAuth
func (h *EmployerHandler) MyJobs(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	jobs, err := h.jobUC.ListByEmployer(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", jobs)
}

// UpdateJob godoc
// @Summary      Update an owned job
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        job_id  path  int  true  "Job ID"
// @Param        job     body  UpdateJobRequest  true  "Partial job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employer/jobs/{job_id} [put]
// @Security     BearerAuth
func (h *EmployerHandler) UpdateJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job, err := h.jobUC.UpdateJob(c.Request.Context(), userID, jobID, domain.JobUpdate{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		SalaryRange: req.SalaryRange,
		ClosingDate: req.ClosingDate,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// DeleteJob godoc
// @Summary      Delete an owned job
// @Tags         employer
// @Produce      json
// @Param        job_id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employer/jobs/{job_id} [delete]
// @Security     BearerAuth
func (h *EmployerHandler) DeleteJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// ViewApplicants godoc
// @Summary      List applicants of an owned job
// @Tags         employer
// @Produce      json
// @Param        job_id  path  int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /employer/jobs/{job_id}/applicants [get]
// @Security     BearerAuth
func (h *EmployerHandler) ViewApplicants(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	apps, err := h.applicationUC.ListByJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", apps)
}

// UpdateApplicationStatus godoc
// @Summary      Transition an application's status
// @Description  Applied may move to Accepted or Rejected; both are terminal
// @Tags         employer
// @Accept       json
// @Produce      json
// @Param        app_id  path  int                  true  "Application ID"
// @Param        status  body  UpdateStatusRequest  true  "New status"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employer/applications/{app_id}/status [put]
// @Security     BearerAuth
func (h *EmployerHandler) UpdateApplicationStatus(c *gin.Context) {
	appID, err := strconv.ParseInt(c.Param("app_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, appID, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Status updated", nil)
}
