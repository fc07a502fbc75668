package v1

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/deadline"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

// maxResumeSize caps resume uploads at 5 MB.
const maxResumeSize = 5 << 20

// uploadTimeout bounds the storage round trip. The request deadline still
// applies; whichever is shorter wins.
const uploadTimeout = 30 * time.Second

var allowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	resumeStore *storage.ResumeStore
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, resumeStore *storage.ResumeStore) {
	handler := &CandidateHandler{candidateUC: candidateUC, resumeStore: resumeStore}

	candidates := protected.Group("/candidates")
	{
		candidates.GET("/me", handler.GetProfile)
		candidates.PUT("/me", handler.UpdateProfile)
		candidates.POST("/me/resume",
			middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig()),
			handler.UploadResume)
	}
}

type UpdateCandidateRequest struct {
	WorkAuthorization string `json:"work_authorization" binding:"max=100"`
	YearsOfExperience *int   `json:"years_of_experience" binding:"omitempty,gte=0"`
}

// GetProfile godoc
// @Summary      Get candidate profile
// @Description  Get the profile of the currently logged-in candidate
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.candidateUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// UpdateProfile godoc
// @Summary      Update candidate profile
// @Description  Create or update the logged-in candidate's profile. The resume URL is managed by the upload endpoint and survives profile updates.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateCandidateRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /candidates/me [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	var req UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.CandidateProfile{
		UserID:            c.GetString(string(domain.KeyUserID)),
		WorkAuthorization: req.WorkAuthorization,
		YearsOfExperience: req.YearsOfExperience,
	}

	if err := h.candidateUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile updated", profile)
}

// UploadResume godoc
// @Summary      Upload resume
// @Description  Upload a resume file (pdf, doc or docx, max 5 MB) and attach it to the candidate profile
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume file"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /candidates/me/resume [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A resume file is required"))
		return
	}
	if fileHeader.Size > maxResumeSize {
		c.Error(apperror.BadRequest("Resume file exceeds the 5 MB limit"))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedResumeExts[ext] {
		c.Error(apperror.BadRequest("Resume must be a PDF or Word document"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	userID := c.GetString(string(domain.KeyUserID))
	contentType := fileHeader.Header.Get("Content-Type")

	// Bound the storage call on its own so a stalled upload surfaces as a
	// typed timeout rather than an opaque storage error.
	var url string
	err = deadline.Call(c.Request.Context(), uploadTimeout, func(ctx context.Context) error {
		var upErr error
		url, upErr = h.resumeStore.Upload(ctx, userID, fileHeader.Filename, contentType, file)
		return upErr
	})
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.AttachResume(c.Request.Context(), userID, url); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume uploaded", gin.H{"resume_url": url})
}
