package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/ats-api/internal/apperrors"
	"github.com/justsurfingit/ats-api/internal/dtos"
	"github.com/justsurfingit/ats-api/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
	Logger     *zap.Logger
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		JobService: j,
		Logger:     logger,
	}
}

// ListJobs is the GET /jobs endpoint
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.ListJobs(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is the GET /jobs/:id endpoint. A non-integer id is treated as a
// route that does not exist.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		NotFound(c)
		return
	}

	job, err := h.JobService.GetJob(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob is the POST /jobs endpoint
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	missing, err := decodeRequired(c, dtos.JobCreationRequiredFields, &req)
	if err != nil {
		respondError(c, h.Logger, apperrors.Validation("Invalid JSON format: "+err.Error()))
		return
	}
	if missing != "" {
		respondError(c, h.Logger, apperrors.Validation("Missing required field: "+missing))
		return
	}

	jobID, err := h.JobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, dtos.JobCreatedResponse{
		Message: "Job created successfully",
		JobID:   jobID,
	})
}
