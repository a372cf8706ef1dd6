package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/parameshwar777/compass-pal-backend-go/internal/middleware"
	"github.com/parameshwar777/compass-pal-backend-go/internal/service"
	"github.com/parameshwar777/compass-pal-backend-go/pkg/response"
)

// PlaceHandler handles HTTP requests for frequent-place reporting
type PlaceHandler struct {
	placeService *service.PlaceService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(placeService *service.PlaceService) *PlaceHandler {
	return &PlaceHandler{
		placeService: placeService,
	}
}

// GetFrequentPlaces handles GET /api/v1/places/frequent
func (h *PlaceHandler) GetFrequentPlaces(c *gin.Context) {
	places, err := h.placeService.FrequentPlaces(middleware.UserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  places,
		"count": len(places),
	})
}

// GetLabeledPlaces handles GET /api/v1/places/labeled
func (h *PlaceHandler) GetLabeledPlaces(c *gin.Context) {
	places, err := h.placeService.LabeledPlaces(middleware.UserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  places,
		"count": len(places),
	})
}
