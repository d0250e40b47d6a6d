package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/tradespark/tradespark-api/config"
	"github.com/tradespark/tradespark-api/internal/leadform"
	"github.com/tradespark/tradespark-api/internal/models"
	"github.com/tradespark/tradespark-api/pkg/httpclient"
	"github.com/tradespark/tradespark-api/pkg/logger"
	"github.com/tradespark/tradespark-api/pkg/metrics"
	"github.com/tradespark/tradespark-api/pkg/recaptcha"
	"github.com/tradespark/tradespark-api/pkg/trigger"
	"go.uber.org/zap"
)

// ContactFallbackMessage is the contact-form counterpart of
// LeadFallbackMessage.
const ContactFallbackMessage = "Failed to submit form. Please try again."

// ContactService handles general contact form submissions: same flow as
// LeadService with the contact schema (no location field).
type ContactService struct {
	cfg        *config.Config
	forwarder  leadform.Forwarder
	httpClient httpclient.Client
	verifier   *recaptcha.Verifier
}

// NewContactService creates a new contact service. forwarder may be nil when
// no CRM contact endpoint is configured.
func NewContactService(cfg *config.Config, forwarder leadform.Forwarder, httpClient httpclient.Client) *ContactService {
	var verifier *recaptcha.Verifier
	if cfg.ReCAPTCHA.SecretKey != "" {
		verifier = recaptcha.NewVerifier(cfg.ReCAPTCHA.SecretKey, httpClient)
	}

	return &ContactService{
		cfg:        cfg,
		forwarder:  forwarder,
		httpClient: httpClient,
		verifier:   verifier,
	}
}

// SubmitContact validates and forwards one contact form submission
func (s *ContactService) SubmitContact(ctx context.Context, req *models.ContactSubmissionRequest) (*models.SubmissionResponse, int) {
	if s.verifier != nil {
		if err := s.verifier.Verify(req.RecaptchaToken); err != nil {
			metrics.ContactSubmissions.WithLabelValues("captcha_failed").Inc()
			logger.Warn("ReCAPTCHA verification failed for contact", zap.Error(err))
			return &models.SubmissionResponse{
				Success: false,
				Message: "Captcha verification failed",
			}, http.StatusBadRequest
		}
	}

	contact, ferr := leadform.ValidateContact(req)
	if ferr != nil {
		metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		return &models.SubmissionResponse{
			Success: false,
			Message: ferr.Message,
			Field:   ferr.Field,
		}, http.StatusBadRequest
	}

	submissionRef := uuid.NewString()

	if s.forwarder != nil {
		result := s.forwarder.Submit(ctx, contact)
		if result.Outcome != leadform.OutcomeAccepted {
			metrics.ContactSubmissions.WithLabelValues(string(result.Outcome)).Inc()
			logger.Warn("Contact forward failed",
				zap.String("outcome", string(result.Outcome)),
				zap.String("submission_ref", submissionRef))
			return &models.SubmissionResponse{
				Success: false,
				Message: result.Message,
			}, http.StatusBadGateway
		}
	} else {
		logger.Info("Contact accepted locally, no CRM endpoint configured",
			zap.String("submission_ref", submissionRef))
	}

	metrics.ContactSubmissions.WithLabelValues("accepted").Inc()
	trigger.CallAsync(s.cfg.EventTriggers.ContactCreatedTriggerURL, submissionRef, s.httpClient)

	return &models.SubmissionResponse{Success: true}, http.StatusOK
}
