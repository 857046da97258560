package v1

import (
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SeekerHandler struct {
	seekerUC      domain.SeekerUsecase
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
}

func NewSeekerHandler(public *gin.RouterGroup, protected *gin.RouterGroup, seekerUC domain.SeekerUsecase, jobUC domain.JobUsecase, applicationUC domain.ApplicationUsecase) {
	handler := &SeekerHandler{seekerUC: seekerUC, jobUC: jobUC, applicationUC: applicationUC}

	// Job search is public: it exposes nothing beyond the posting itself.
	public.GET("/jobs", handler.SearchJobs)

	seeker := protected.Group("/seeker")
	{
		seeker.GET("/profile", handler.GetProfile)
		seeker.PUT("/profile", handler.UpdateProfile)
		seeker.POST("/apply/:job_id", handler.Apply)
		seeker.GET("/applications", handler.MyApplications)
	}
}

type SeekerProfileRequest struct {
	FullName   string  `json:"full_name" binding:"required"`
	Skills     *string `json:"skills"`
	Experience *string `json:"experience"`
	Education  *string `json:"education"`
	ResumeLink *string `json:"resume_link"`
}

// GetProfile godoc
// @Summary      Get own seeker profile
// @Tags         seeker
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /seeker/profile [get]
// @Security     BearerAuth
func (h *SeekerHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.seekerUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", profile)
}

// UpdateProfile godoc
// @Summary      Update own seeker profile
// @Tags         seeker
// @Accept       json
// @Produce      json
// @Param        profile  body      SeekerProfileRequest  true  "Profile JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /seeker/profile [put]
// @Security     BearerAuth
func (h *SeekerHandler) UpdateProfile(c *gin.Context) {
	var req SeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.seekerUC.UpdateProfile(c.Request.Context(), userID, &domain.SeekerProfile{
		FullName:   req.FullName,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
		ResumeLink: req.ResumeLink,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// SearchJobs godoc
// @Summary      Search job postings
// @Description  Public listing filtered by title and location contains-match
// @Tags         jobs
// @Produce      json
// @Param        title     query  string  false  "Title contains"
// @Param        location  query  string  false  "Location contains"
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *SeekerHandler) SearchJobs(c *gin.Context) {
	filter := domain.JobFilter{
		Title:    c.Query("title"),
		Location: c.Query("location"),
	}

	jobs, err := h.jobUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", jobs)
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application; at most one per job per seeker
// @Tags         seeker
// @Produce      json
// @Param        job_id  path  int  true  "Job ID"
// @Success      201  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /seeker/apply/{job_id} [post]
// @Security     BearerAuth
func (h *SeekerHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("job_id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	app, err := h.applicationUC.Apply(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// MyApplications godoc
// @Summary      List own applications
// @Tags         seeker
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /seeker/applications [get]
// @Security     BearerAuth
func (h *SeekerHandler) MyApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	apps, err := h.applicationUC.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", apps)
}
