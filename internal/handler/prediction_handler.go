package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/parameshwar777/compass-pal-backend-go/internal/middleware"
	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
	"github.com/parameshwar777/compass-pal-backend-go/internal/prediction"
	"github.com/parameshwar777/compass-pal-backend-go/internal/service"
	"github.com/parameshwar777/compass-pal-backend-go/pkg/response"
)

// PredictionHandler handles HTTP requests for next-location predictions
type PredictionHandler struct {
	predictionService *service.PredictionService
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionService *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
	}
}

// Predict handles POST /api/v1/predictions
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid prediction request")
		return
	}

	result, err := h.predictionService.PredictNext(middleware.UserID(c), req)
	if err != nil {
		var insufficient *prediction.InsufficientDataError
		if errors.As(err, &insufficient) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "Not enough location data",
				"message":    insufficient.Error(),
				"dataPoints": insufficient.DataPoints,
			})
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListPredictions handles GET /api/v1/predictions
func (h *PredictionHandler) ListPredictions(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "100")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	predictions, err := h.predictionService.ListPredictions(middleware.UserID(c), limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  predictions,
		"count": len(predictions),
	})
}

// DeletePrediction handles DELETE /api/v1/predictions/:id
func (h *PredictionHandler) DeletePrediction(c *gin.Context) {
	deleted, err := h.predictionService.DeletePrediction(middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if !deleted {
		response.NotFound(c, "Prediction not found")
		return
	}

	response.Success(c, nil)
}
