package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradespark/tradespark-api/config"
	"github.com/tradespark/tradespark-api/internal/models"
	"github.com/tradespark/tradespark-api/internal/services"
)

func newContactRouter() *gin.Engine {
	service := services.NewContactService(&config.Config{}, nil, nil)
	handler := NewContactHandler(service)

	router := gin.New()
	router.POST("/contacts", handler.SubmitContact)
	return router
}

func TestContactHandler_SubmitContact_Accepted(t *testing.T) {
	router := newContactRouter()

	w := postJSON(t, router, "/contacts", models.ContactSubmissionRequest{
		Name:    "Arjun Mehta",
		Email:   "arjun@example.com",
		Phone:   "9123456780",
		Message: "Please call me back about the mentorship program.",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestContactHandler_SubmitContact_ValidationError(t *testing.T) {
	router := newContactRouter()

	w := postJSON(t, router, "/contacts", models.ContactSubmissionRequest{
		Name:    "Arjun Mehta",
		Email:   "arjun@example.com",
		Phone:   "91234",
		Message: "Please call me back about the mentorship program.",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "phone", resp.Field)
	assert.Equal(t, "phone must be exactly 10 digits", resp.Message)
}
