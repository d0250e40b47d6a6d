package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradespark/tradespark-api/internal/models"
	"github.com/tradespark/tradespark-api/internal/services"
)

type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContact handles POST /api/v1/contacts
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, status := h.service.SubmitContact(c.Request.Context(), &req)
	if !resp.Success {
		attachError(c, fmt.Errorf("contact submission failed: %s", resp.Message))
	}
	c.JSON(status, resp)
}
