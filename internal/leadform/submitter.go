package leadform

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"github.com/tradespark/tradespark-api/pkg/circuitbreaker"
	"github.com/tradespark/tradespark-api/pkg/httpclient"
	"github.com/tradespark/tradespark-api/pkg/logger"
	"github.com/tradespark/tradespark-api/pkg/metrics"
	"go.uber.org/zap"
)

// Outcome classifies the terminal result of a submission attempt
type Outcome string

const (
	// OutcomeAccepted: the endpoint acknowledged the record (2xx status, or
	// a body with an explicit success flag — HTTP status checked first)
	OutcomeAccepted Outcome = "accepted"
	// OutcomeRejected: the endpoint answered with a non-2xx status and a
	// non-success body
	OutcomeRejected Outcome = "rejected"
	// OutcomeUnreachable: the request never completed (DNS, connection,
	// timeout, or open circuit breaker)
	OutcomeUnreachable Outcome = "unreachable"
)

// Result is the terminal outcome of one Submit call
type Result struct {
	Outcome Outcome
	Message string
}

// Forwarder submits a validated record upstream
type Forwarder interface {
	Submit(ctx context.Context, record any) Result
}

// Submitter forwards validated records to a CRM endpoint. Each Submit call
// issues exactly one HTTP POST; there are no automatic retries, and
// deduplication is the caller's responsibility.
type Submitter struct {
	endpoint        string
	fallbackMessage string
	operation       string
	client          httpclient.Client
	breaker         *gobreaker.CircuitBreaker
}

// NewSubmitter creates a submitter for one CRM endpoint. fallbackMessage is
// returned to the visitor when the upstream gives no usable message of its
// own; operation labels the CRM client metrics.
func NewSubmitter(endpoint, fallbackMessage, operation string, client httpclient.Client) *Submitter {
	return &Submitter{
		endpoint:        endpoint,
		fallbackMessage: fallbackMessage,
		operation:       operation,
		client:          client,
		breaker:         circuitbreaker.New(circuitbreaker.DefaultConfig("crm_" + operation)),
	}
}

// responseEnvelope is the loosely-specified upstream response body. Both
// fields are optional; decode failures are ignored.
type responseEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit sends the record as a JSON POST and maps the response onto the
// outcome taxonomy. The circuit breaker only guards the transport call: an
// open breaker maps to OutcomeUnreachable and never re-issues the request.
func (s *Submitter) Submit(ctx context.Context, record any) Result {
	body, err := json.Marshal(record)
	if err != nil {
		logger.Error("Failed to encode submission", zap.Error(err), zap.String("operation", s.operation))
		return Result{Outcome: OutcomeUnreachable, Message: s.fallbackMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		logger.Error("Failed to build submission request", zap.Error(err), zap.String("operation", s.operation))
		return Result{Outcome: OutcomeUnreachable, Message: s.fallbackMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := circuitbreaker.Execute(s.breaker, func() (*http.Response, error) {
		return s.client.Do(req)
	})
	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.CRMRequestTotal.WithLabelValues(s.operation, "unreachable").Inc()
		metrics.CRMRequestDuration.WithLabelValues(s.operation, "unreachable").Observe(duration)
		logger.LogAPICall("crm", s.operation, "error", duration, zap.Error(err))
		return Result{Outcome: OutcomeUnreachable, Message: s.fallbackMessage}
	}
	defer resp.Body.Close()

	var envelope responseEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&envelope) //nolint:errcheck // body shape is not guaranteed

	if (resp.StatusCode >= 200 && resp.StatusCode < 300) || envelope.Success {
		metrics.CRMRequestTotal.WithLabelValues(s.operation, "accepted").Inc()
		metrics.CRMRequestDuration.WithLabelValues(s.operation, "accepted").Observe(duration)
		logger.LogAPICall("crm", s.operation, "success", duration, zap.Int("status_code", resp.StatusCode))
		return Result{Outcome: OutcomeAccepted}
	}

	message := envelope.Message
	if message == "" {
		message = s.fallbackMessage
	}

	metrics.CRMRequestTotal.WithLabelValues(s.operation, "rejected").Inc()
	metrics.CRMRequestDuration.WithLabelValues(s.operation, "rejected").Observe(duration)
	logger.LogAPICall("crm", s.operation, "rejected", duration,
		zap.Int("status_code", resp.StatusCode),
		zap.String("upstream_message", envelope.Message))

	return Result{Outcome: OutcomeRejected, Message: message}
}
