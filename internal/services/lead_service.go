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

// LeadFallbackMessage is returned when the upstream CRM rejects a lead
// without a message of its own, or cannot be reached.
const LeadFallbackMessage = "Failed to send lead"

// LeadService validates lead form submissions and forwards them upstream.
// Leads are never stored here: the CRM is the system of record, and when no
// CRM endpoint is configured they are accepted and logged only.
type LeadService struct {
	cfg        *config.Config
	forwarder  leadform.Forwarder
	httpClient httpclient.Client
	verifier   *recaptcha.Verifier
}

// NewLeadService creates a new lead service. forwarder may be nil when no
// CRM lead endpoint is configured.
func NewLeadService(cfg *config.Config, forwarder leadform.Forwarder, httpClient httpclient.Client) *LeadService {
	var verifier *recaptcha.Verifier
	if cfg.ReCAPTCHA.SecretKey != "" {
		verifier = recaptcha.NewVerifier(cfg.ReCAPTCHA.SecretKey, httpClient)
	}

	return &LeadService{
		cfg:        cfg,
		forwarder:  forwarder,
		httpClient: httpClient,
		verifier:   verifier,
	}
}

// SubmitLead runs the full capture flow: captcha (when configured),
// validation, single-shot forward. The returned status is the HTTP code the
// handler should answer with. Validation failure means no network activity;
// a failed forward is terminal for this attempt but the visitor may re-submit.
func (s *LeadService) SubmitLead(ctx context.Context, req *models.LeadSubmissionRequest) (*models.SubmissionResponse, int) {
	if s.verifier != nil {
		if err := s.verifier.Verify(req.RecaptchaToken); err != nil {
			metrics.LeadSubmissions.WithLabelValues("captcha_failed").Inc()
			logger.Warn("ReCAPTCHA verification failed for lead", zap.Error(err))
			return &models.SubmissionResponse{
				Success: false,
				Message: "Captcha verification failed",
			}, http.StatusBadRequest
		}
	}

	lead, ferr := leadform.ValidateLead(req)
	if ferr != nil {
		metrics.LeadSubmissions.WithLabelValues("invalid").Inc()
		return &models.SubmissionResponse{
			Success: false,
			Message: ferr.Message,
			Field:   ferr.Field,
		}, http.StatusBadRequest
	}

	submissionRef := uuid.NewString()

	if s.forwarder != nil {
		result := s.forwarder.Submit(ctx, lead)
		if result.Outcome != leadform.OutcomeAccepted {
			metrics.LeadSubmissions.WithLabelValues(string(result.Outcome)).Inc()
			logger.Warn("Lead forward failed",
				zap.String("outcome", string(result.Outcome)),
				zap.String("submission_ref", submissionRef))
			return &models.SubmissionResponse{
				Success: false,
				Message: result.Message,
			}, http.StatusBadGateway
		}
	} else {
		logger.Info("Lead accepted locally, no CRM endpoint configured",
			zap.String("submission_ref", submissionRef),
			zap.String("location", lead.Location))
	}

	metrics.LeadSubmissions.WithLabelValues("accepted").Inc()
	trigger.CallAsync(s.cfg.EventTriggers.LeadCreatedTriggerURL, submissionRef, s.httpClient)

	return &models.SubmissionResponse{Success: true}, http.StatusCreated
}
