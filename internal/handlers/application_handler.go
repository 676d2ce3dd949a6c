package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/ats-api/internal/apperrors"
	"github.com/justsurfingit/ats-api/internal/dtos"
	"github.com/justsurfingit/ats-api/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
	Logger             *zap.Logger
}

func NewApplicationHandler(a *services.ApplicationService, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		ApplicationService: a,
		Logger:             logger,
	}
}

// Apply is the POST /apply endpoint. Unlike POST /jobs, a missing key is
// reported with one combined message.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplicationRequest
	missing, err := decodeRequired(c, dtos.ApplicationRequiredFields, &req)
	if err != nil {
		respondError(c, h.Logger, apperrors.Validation("Invalid JSON format: "+err.Error()))
		return
	}
	if missing != "" {
		respondError(c, h.Logger, apperrors.Validation("Missing required fields: candidate_id and job_id"))
		return
	}

	appID, err := h.ApplicationService.SubmitApplication(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.ApplicationCreatedResponse{
		Message:       "Application submitted successfully",
		ApplicationID: appID,
	})
}

// ListApplications is the GET /applications endpoint
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.ApplicationService.ListApplications(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}
