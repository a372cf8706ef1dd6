package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/parameshwar777/compass-pal-backend-go/internal/middleware"
	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
	"github.com/parameshwar777/compass-pal-backend-go/internal/service"
	"github.com/parameshwar777/compass-pal-backend-go/pkg/response"
)

// ContactHandler handles HTTP requests for emergency contacts
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// CreateContact handles POST /api/v1/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid contact payload")
		return
	}

	contact, err := h.contactService.CreateContact(middleware.UserID(c), req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, contact)
}

// ListContacts handles GET /api/v1/contacts
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contactService.ListContacts(middleware.UserID(c))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  contacts,
		"count": len(contacts),
	})
}

// DeleteContact handles DELETE /api/v1/contacts/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	deleted, err := h.contactService.DeleteContact(middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if !deleted {
		response.NotFound(c, "Contact not found")
		return
	}

	response.Success(c, nil)
}
