package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
}

func NewEmployerHandler(protected *gin.RouterGroup, employerUC domain.EmployerUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	employers := protected.Group("/employers")
	{
		employers.GET("/me", handler.GetProfile)
		employers.PUT("/me", handler.UpdateProfile)
	}
}

type UpdateEmployerRequest struct {
	CompanyName string  `json:"company_name" binding:"required,min=2,max=200"`
	Location    string  `json:"location" binding:"max=200"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Description string  `json:"description" binding:"max=2000"`
}

// GetProfile godoc
// @Summary      Get employer profile
// @Description  Get the company profile of the currently logged-in employer
// @Tags         employers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.EmployerProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/me [get]
// @Security     BearerAuth
func (h *EmployerHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.employerUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile", profile)
}

// UpdateProfile godoc
// @Summary      Update employer profile
// @Description  Create or update the logged-in employer's company profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateEmployerRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /employers/me [put]
// @Security     BearerAuth
func (h *EmployerHandler) UpdateProfile(c *gin.Context) {
	var req UpdateEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.EmployerProfile{
		UserID:      c.GetString(string(domain.KeyUserID)),
		CompanyName: req.CompanyName,
		Location:    req.Location,
		Website:     req.Website,
		Description: req.Description,
	}

	if err := h.employerUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer profile updated", profile)
}
