package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - the active-only filter lives in the SQL, so there is
	// no way to coax inactive postings out of these endpoints.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("/public", handler.PublicList)
		publicJobs.GET("/public/:id", handler.PublicGetDetails)
	}

	// PROTECTED routes
	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.GET("", handler.List)
		protectedJobs.GET("/:id", handler.GetDetails)
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.PATCH("/:id/active", handler.SetActive)
		protectedJobs.DELETE("/:id", handler.Delete)
	}

	// Employer-specific job routes (only shows employer's own jobs,
	// inactive ones included)
	employers := protected.Group("/employers")
	{
		employers.GET("/jobs", handler.ListByEmployer)
	}
}

type JobRequest struct {
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description" binding:"required"`
	Location           string   `json:"location" binding:"required"`
	JobType            string   `json:"job_type" binding:"required"`
	SalaryMin          *int64   `json:"salary_min"`
	SalaryMax          *int64   `json:"salary_max"`
	SkillsRequired     []string `json:"skills_required"`
	ExperienceRequired int      `json:"experience_required"`
	WorkAuthorization  []string `json:"work_authorization"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func (r *JobRequest) toDomain() *domain.Job {
	return &domain.Job{
		Title:              r.Title,
		Description:        r.Description,
		Location:           r.Location,
		JobType:            r.JobType,
		SalaryMin:          r.SalaryMin,
		SalaryMax:          r.SalaryMax,
		SkillsRequired:     r.SkillsRequired,
		ExperienceRequired: r.ExperienceRequired,
		WorkAuthorization:  r.WorkAuthorization,
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return 0, false
	}
	return id, true
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a new job posting (employer or admin only). New jobs start active.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job := req.toDomain()

	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// PublicList godoc
// @Summary      List active jobs (public)
// @Description  Get a paginated list of active jobs, no auth required
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobs/public [get]
func (h *JobHandler) PublicList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListActiveJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Public job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// PublicGetDetails godoc
// @Summary      Get active job details (public)
// @Description  Get detailed info of an active job. Inactive jobs return 404 here.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/public/{id} [get]
func (h *JobHandler) PublicGetDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.jobUC.GetPublicJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// List godoc
// @Summary      List active jobs
// @Description  Get a paginated list of active jobs for authenticated users
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListActiveJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Description  Get detailed info of a job. Inactive jobs are visible only to the owning employer and admins; everyone else gets 404.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	job, err := h.jobUC.GetPublicJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// ListByEmployer godoc
// @Summary      List employer's own jobs
// @Description  Get a list of jobs belonging to the logged-in employer only, inactive included
// @Tags         employers
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Router       /employers/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListByEmployer(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if userID == "" {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListJobsByEmployer(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer job list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Update godoc
// @Summary      Update a job
// @Description  Update an existing job posting (owning employer or admin). Ownership and active flag are not touched here.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job := req.toDomain()
	job.ID = id

	if err := h.jobUC.UpdateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// SetActive godoc
// @Summary      Toggle job visibility
// @Description  Activate or deactivate a job posting (owning employer or admin). Applications are untouched either way.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Job ID"
// @Param        body  body      SetActiveRequest  true  "Active flag"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobs/{id}/active [patch]
// @Security     BearerAuth
func (h *JobHandler) SetActive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.SetJobActive(c.Request.Context(), userID, id, *req.IsActive); err != nil {
		c.Error(err)
		return
	}

	msg := "Job deactivated"
	if *req.IsActive {
		msg = "Job activated"
	}
	response.Success(c, http.StatusOK, msg, nil)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Permanently delete a job posting and all of its applications (owning employer or admin)
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
