package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := protected.Group("/auth")
	{
		auth.GET("/me", handler.Me)
		auth.POST("/profile", handler.EnsureProfile)
		auth.PUT("/profile", handler.UpdateProfile)
	}
}

type EnsureProfileRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Role     string  `json:"role" binding:"omitempty,oneof=candidate employer"`
	Phone    *string `json:"phone"`
}

type UpdateProfileRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	Phone    *string `json:"phone"`
}

// Me godoc
// @Summary      Get current principal
// @Description  Returns the profile and resolved role of the authenticated user. A freshly signed-up user whose profile row is not provisioned yet gets role "unknown" and a null profile, not an error.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, role, err := h.authUC.Resolve(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", gin.H{
		"profile": profile,
		"role":    role,
	})
}

// EnsureProfile godoc
// @Summary      Provision profile
// @Description  Idempotently creates the profile row for the authenticated user. Called once after signup; repeat calls are no-ops.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        profile  body      EnsureProfileRequest  true  "Profile JSON"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/profile [post]
// @Security     BearerAuth
func (h *AuthHandler) EnsureProfile(c *gin.Context) {
	var req EnsureProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.Profile{
		ID:       c.GetString(string(domain.KeyUserID)),
		Email:    c.GetString(string(domain.KeyUserEmail)),
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     domain.ParseRole(req.Role),
	}

	if err := h.authUC.EnsureProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile ready", profile)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Update name and phone of the authenticated user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /auth/profile [put]
// @Security     BearerAuth
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.Profile{
		FullName: req.FullName,
		Phone:    req.Phone,
	}

	if err := h.authUC.UpdateOwnProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}
