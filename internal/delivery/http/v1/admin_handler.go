package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
	jobUC   domain.JobUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase, jobUC domain.JobUsecase) {
	handler := &AdminHandler{adminUC: adminUC, jobUC: jobUC}

	// Usecases re-check the admin role from context; the group gate is the
	// first line, not the only one.
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		admin.GET("/stats", handler.GetStats)
		admin.GET("/users", handler.ListUsers)
		admin.PUT("/users/:id/role", handler.UpdateUserRole)
		admin.DELETE("/users/:id", handler.DeleteUser)
		admin.GET("/jobs", handler.ListAllJobs)
	}
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=candidate employer admin"`
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  Get user, job and application counts for the admin dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.AdminStats}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard stats", stats)
}

// ListUsers godoc
// @Summary      List users
// @Description  Get a paginated list of user profiles, optionally filtered by role
// @Tags         admin
// @Produce      json
// @Param        role       query     string  false  "Role filter (candidate, employer, admin)"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	var role domain.Role
	if filter := c.Query("role"); filter != "" {
		role = domain.ParseRole(filter)
		if role == domain.RoleUnknown {
			c.Error(apperror.BadRequest("Invalid role filter"))
			return
		}
	}

	result, err := h.adminUC.ListUsers(c.Request.Context(), role, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User list", result)
}

// UpdateUserRole godoc
// @Summary      Change a user's role
// @Description  Set a user's role to candidate, employer or admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "User ID"
// @Param        role  body      UpdateUserRoleRequest  true  "Role JSON"
// @Success      200   {object}  response.Response{data=domain.Profile}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/users/{id}/role [put]
// @Security     BearerAuth
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID := c.Param("id")

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.adminUC.UpdateUserRole(c.Request.Context(), userID, domain.ParseRole(req.Role))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User role updated", profile)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Delete a user profile. The schema cascades through the role profile, its jobs and their applications in one shot.
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")

	if err := h.adminUC.DeleteUser(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User deleted", nil)
}

// ListAllJobs godoc
// @Summary      List all jobs
// @Description  Get every job regardless of active state for moderation
// @Tags         admin
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Router       /admin/jobs [get]
// @Security     BearerAuth
func (h *AdminHandler) ListAllJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListAllJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "All jobs", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
