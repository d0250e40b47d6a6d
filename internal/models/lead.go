package models

// LeadSubmissionRequest represents a raw lead form submission from the
// website. Validation happens in leadform, not via binding tags, so that the
// first failing field is reported deterministically.
type LeadSubmissionRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Message        string `json:"message"`
	Location       string `json:"location,omitempty"`
	RecaptchaToken string `json:"recaptchaToken,omitempty"`
}

// ContactSubmissionRequest represents a general contact form submission.
// Same shape as a lead minus the location field.
type ContactSubmissionRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptchaToken,omitempty"`
}

// SubmissionResponse is the response after submitting a lead or contact form
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}
