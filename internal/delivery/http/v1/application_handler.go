package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/applications")
	{
		applications.POST("", handler.Apply)
		applications.GET("/me", handler.MyApplications)
		applications.GET("/:id", handler.GetDetails)
		applications.PATCH("/:id/status", handler.UpdateStatus)
	}

	// Per-job applicant list for the owning employer
	jobs := protected.Group("/jobs")
	{
		jobs.GET("/:id/applications", handler.ListByJob)
	}
}

type ApplyRequest struct {
	JobID       int64  `json:"job_id" binding:"required"`
	CoverLetter string `json:"cover_letter"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submit an application (candidate only). Requires a resume on file and an active job; a second application to the same job returns 409.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      ApplyRequest  true  "Application JSON"
// @Success      201          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      403          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      409          {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	app, err := h.applicationUC.Apply(c.Request.Context(), userID, req.JobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// MyApplications godoc
// @Summary      List own applications
// @Description  Get all applications of the logged-in candidate with job and company info. A candidate without a profile gets an empty list, not an error.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /applications/me [get]
// @Security     BearerAuth
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	apps, err := h.applicationUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}

	response.Success(c, http.StatusOK, "My applications", apps)
}

// GetDetails godoc
// @Summary      Get application details
// @Description  Get a single application. Visible to the applying candidate, the employer owning the job, and admins.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	app, err := h.applicationUC.GetApplication(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application details", app)
}

// ListByJob godoc
// @Summary      List applications for a job
// @Description  Get all applications for a job (owning employer or admin)
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	apps, err := h.applicationUC.ListByJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}

	response.Success(c, http.StatusOK, "Job applications", apps)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Set an application to pending, accepted or rejected (owning employer or admin). Any status can move to any other; resetting to pending is the supported undo.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      int                  true  "Application ID"
// @Param        status  body      UpdateStatusRequest  true  "Status JSON"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	if err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
