package recaptcha

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tradespark/tradespark-api/pkg/httpclient"
)

const verifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Response represents the response from Google's reCAPTCHA verification API
type Response struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verifier handles reCAPTCHA verification
type Verifier struct {
	secretKey  string
	httpClient httpclient.Client
}

// NewVerifier creates a new reCAPTCHA verifier
func NewVerifier(secretKey string, httpClient httpclient.Client) *Verifier {
	return &Verifier{
		secretKey:  secretKey,
		httpClient: httpClient,
	}
}

// Verify verifies a reCAPTCHA token with Google's API
func (v *Verifier) Verify(token string) error {
	data := url.Values{}
	data.Set("secret", v.secretKey)
	data.Set("response", token)

	resp, err := v.httpClient.Post(
		verifyURL,
		"application/x-www-form-urlencoded",
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return fmt.Errorf("failed to verify recaptcha: %w", err)
	}
	defer resp.Body.Close()

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode recaptcha response: %w", err)
	}

	if !result.Success {
		if len(result.ErrorCodes) > 0 {
			return fmt.Errorf("recaptcha verification failed: %s", strings.Join(result.ErrorCodes, ", "))
		}
		return fmt.Errorf("recaptcha verification failed")
	}

	return nil
}
