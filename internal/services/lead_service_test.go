package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tradespark/tradespark-api/config"
	"github.com/tradespark/tradespark-api/internal/leadform"
	"github.com/tradespark/tradespark-api/internal/models"
	"github.com/tradespark/tradespark-api/internal/services"
)

func validLeadSubmission() *models.LeadSubmissionRequest {
	return &models.LeadSubmissionRequest{
		Name:     "Priya Sharma",
		Email:    "priya.sharma@example.com",
		Phone:    "9876543210",
		Message:  "I want to learn about options trading courses.",
		Location: "Mumbai",
	}
}

func TestLeadService_SubmitLead_Accepted(t *testing.T) {
	mockForwarder := new(MockForwarder)
	service := services.NewLeadService(&config.Config{}, mockForwarder, nil)
	ctx := context.Background()

	mockForwarder.On("Submit", ctx, mock.MatchedBy(func(record any) bool {
		lead, ok := record.(*leadform.Lead)
		return ok && lead.Name == "Priya Sharma" && lead.Location == "Mumbai"
	})).Return(leadform.Result{Outcome: leadform.OutcomeAccepted}).Once()

	resp, status := service.SubmitLead(ctx, validLeadSubmission())

	assert.Equal(t, http.StatusCreated, status)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Message)

	mockForwarder.AssertExpectations(t)
}

func TestLeadService_SubmitLead_ValidationFailureSkipsForward(t *testing.T) {
	mockForwarder := new(MockForwarder)
	service := services.NewLeadService(&config.Config{}, mockForwarder, nil)

	req := validLeadSubmission()
	req.Phone = "12345"

	resp, status := service.SubmitLead(context.Background(), req)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)
	assert.Equal(t, "phone", resp.Field)
	assert.Equal(t, "phone must be exactly 10 digits", resp.Message)

	mockForwarder.AssertNotCalled(t, "Submit")
}

func TestLeadService_SubmitLead_UpstreamRejected(t *testing.T) {
	mockForwarder := new(MockForwarder)
	service := services.NewLeadService(&config.Config{}, mockForwarder, nil)
	ctx := context.Background()

	mockForwarder.On("Submit", ctx, mock.Anything).
		Return(leadform.Result{Outcome: leadform.OutcomeRejected, Message: "Duplicate phone"}).Once()

	resp, status := service.SubmitLead(ctx, validLeadSubmission())

	assert.Equal(t, http.StatusBadGateway, status)
	assert.False(t, resp.Success)
	assert.Equal(t, "Duplicate phone", resp.Message)

	mockForwarder.AssertExpectations(t)
}

func TestLeadService_SubmitLead_UpstreamUnreachable(t *testing.T) {
	mockForwarder := new(MockForwarder)
	service := services.NewLeadService(&config.Config{}, mockForwarder, nil)
	ctx := context.Background()

	mockForwarder.On("Submit", ctx, mock.Anything).
		Return(leadform.Result{Outcome: leadform.OutcomeUnreachable, Message: services.LeadFallbackMessage}).Once()

	resp, status := service.SubmitLead(ctx, validLeadSubmission())

	assert.Equal(t, http.StatusBadGateway, status)
	assert.False(t, resp.Success)
	assert.Equal(t, services.LeadFallbackMessage, resp.Message)
}

func TestLeadService_SubmitLead_NoForwarderAcceptsLocally(t *testing.T) {
	service := services.NewLeadService(&config.Config{}, nil, nil)

	resp, status := service.SubmitLead(context.Background(), validLeadSubmission())

	assert.Equal(t, http.StatusCreated, status)
	assert.True(t, resp.Success)
}

func TestLeadService_SubmitLead_CaptchaFailure(t *testing.T) {
	mockForwarder := new(MockForwarder)
	mockHTTPClient := new(MockHTTPClient)
	cfg := &config.Config{
		ReCAPTCHA: config.ReCAPTCHAConfig{SecretKey: "test-secret"},
	}
	service := services.NewLeadService(cfg, mockForwarder, mockHTTPClient)

	mockHTTPClient.On("Post", mock.Anything, "application/x-www-form-urlencoded", mock.Anything).
		Return(nil, errors.New("verification service unavailable")).Once()

	req := validLeadSubmission()
	req.RecaptchaToken = "some-token"

	resp, status := service.SubmitLead(context.Background(), req)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)
	assert.Equal(t, "Captcha verification failed", resp.Message)

	mockForwarder.AssertNotCalled(t, "Submit")
	mockHTTPClient.AssertExpectations(t)
}
