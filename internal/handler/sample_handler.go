package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/parameshwar777/compass-pal-backend-go/internal/middleware"
	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
	"github.com/parameshwar777/compass-pal-backend-go/internal/service"
	"github.com/parameshwar777/compass-pal-backend-go/pkg/response"
)

// SampleHandler handles HTTP requests for location samples
type SampleHandler struct {
	sampleService *service.SampleService
}

// NewSampleHandler creates a new sample handler
func NewSampleHandler(sampleService *service.SampleService) *SampleHandler {
	return &SampleHandler{
		sampleService: sampleService,
	}
}

// LogSample handles POST /api/v1/samples
func (h *SampleHandler) LogSample(c *gin.Context) {
	var req models.LogSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid sample payload")
		return
	}

	sample, err := h.sampleService.LogSample(middleware.UserID(c), req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, sample)
}

// ListSamples handles GET /api/v1/samples
func (h *SampleHandler) ListSamples(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "0")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	samples, err := h.sampleService.ListSamples(middleware.UserID(c), limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  samples,
		"count": len(samples),
	})
}

// DeleteSample handles DELETE /api/v1/samples/:id
func (h *SampleHandler) DeleteSample(c *gin.Context) {
	deleted, err := h.sampleService.DeleteSample(middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if !deleted {
		response.NotFound(c, "Sample not found")
		return
	}

	response.Success(c, nil)
}

// GetStats handles GET /api/v1/samples/stats
func (h *SampleHandler) GetStats(c *gin.Context) {
	stats, err := h.sampleService.Stats(middleware.UserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, stats)
}
