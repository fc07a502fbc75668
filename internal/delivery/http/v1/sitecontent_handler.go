package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SiteContentHandler struct {
	siteContentUC domain.SiteContentUsecase
}

func NewSiteContentHandler(public *gin.RouterGroup, protected *gin.RouterGroup, siteContentUC domain.SiteContentUsecase) {
	handler := &SiteContentHandler{siteContentUC: siteContentUC}

	// Reading site copy is public
	public.GET("/content/:section", handler.GetSection)

	// Editing is admin-only
	content := protected.Group("/content")
	content.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		content.PUT("/:section", handler.UpdateSection)
	}
}

type UpdateSectionRequest struct {
	Content map[string]string `json:"content" binding:"required"`
}

// GetSection godoc
// @Summary      Get site content
// @Description  Get the content map for a section (e.g. about_page). A section with no stored row returns an empty map so pages render with defaults.
// @Tags         content
// @Produce      json
// @Param        section  path      string  true  "Section key"
// @Success      200      {object}  response.Response{data=domain.SiteContent}
// @Router       /content/{section} [get]
func (h *SiteContentHandler) GetSection(c *gin.Context) {
	section := c.Param("section")

	content, err := h.siteContentUC.GetSection(c.Request.Context(), section)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Site content", content)
}

// UpdateSection godoc
// @Summary      Update site content
// @Description  Replace the content map for a section (admin only)
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        section  path      string                true  "Section key"
// @Param        body     body      UpdateSectionRequest  true  "Content JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /content/{section} [put]
// @Security     BearerAuth
func (h *SiteContentHandler) UpdateSection(c *gin.Context) {
	section := c.Param("section")

	var req UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	content := &domain.SiteContent{
		SectionKey: section,
		Content:    req.Content,
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.siteContentUC.UpdateSection(c.Request.Context(), userID, content); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Site content updated", content)
}
