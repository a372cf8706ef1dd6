package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parameshwar777/compass-pal-backend-go/internal/alert"
	"github.com/parameshwar777/compass-pal-backend-go/internal/middleware"
	"github.com/parameshwar777/compass-pal-backend-go/internal/service"
	"github.com/parameshwar777/compass-pal-backend-go/pkg/response"
)

// AlertHandler handles HTTP requests for emergency alerts
type AlertHandler struct {
	alertService *service.AlertService
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertService *service.AlertService) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
	}
}

// SendAlert handles POST /api/v1/alerts
func (h *AlertHandler) SendAlert(c *gin.Context) {
	var req service.SendAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid alert payload")
		return
	}

	report, err := h.alertService.SendAlert(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		if errors.Is(err, alert.ErrNoQualifyingContacts) {
			response.BadRequest(c, "No emergency contacts with an email address")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, report)
}
