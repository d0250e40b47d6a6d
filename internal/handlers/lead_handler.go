package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradespark/tradespark-api/internal/models"
	"github.com/tradespark/tradespark-api/internal/services"
)

type LeadHandler struct {
	service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// SubmitLead handles POST /api/v1/leads. The service decides the status
// code: 201 accepted, 400 validation/captcha failure, 502 upstream failure.
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	var req models.LeadSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	resp, status := h.service.SubmitLead(c.Request.Context(), &req)
	if !resp.Success {
		attachError(c, fmt.Errorf("lead submission failed: %s", resp.Message))
	}
	c.JSON(status, resp)
}
