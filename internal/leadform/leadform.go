// Package leadform implements the lead/contact capture core: schema
// validation with a deterministic first-error rule, and single-shot
// submission to the upstream CRM with a small outcome taxonomy.
package leadform

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tradespark/tradespark-api/internal/models"
)

// Lead is a validated lead record. Field declaration order fixes the
// validation order: name, email, phone, message, location. When several
// fields are invalid only the first one is reported; callers re-validate
// after each correction.
type Lead struct {
	Name     string `json:"name" validate:"required,min=5,max=50"`
	Email    string `json:"email" validate:"required,email,email_domain"`
	Phone    string `json:"phone" validate:"required,len=10,number"`
	Message  string `json:"message" validate:"required,min=10,max=500"`
	Location string `json:"location,omitempty" validate:"omitempty,min=2,max=100"`
}

// Contact is a validated general-contact record: same rules as Lead, no
// location field.
type Contact struct {
	Name    string `json:"name" validate:"required,min=5,max=50"`
	Email   string `json:"email" validate:"required,email,email_domain"`
	Phone   string `json:"phone" validate:"required,len=10,number"`
	Message string `json:"message" validate:"required,min=10,max=500"`
}

// FieldError reports the first field that failed validation
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON field names, not Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// The stock email rule accepts dotless domains ("a@b"); marketing-site
	// addresses always carry a public TLD, so require one.
	_ = v.RegisterValidation("email_domain", func(fl validator.FieldLevel) bool {
		addr := fl.Field().String()
		if strings.ContainsAny(addr, " \t") {
			return false
		}
		at := strings.LastIndex(addr, "@")
		if at <= 0 || at == len(addr)-1 {
			return false
		}
		return strings.Contains(addr[at+1:], ".")
	})

	return v
}

// ValidateLead validates a raw lead submission. On success the returned Lead
// carries exactly the schema fields, trimmed, with an absent or empty
// location omitted. On failure the first failing field (in schema order) is
// returned and the record is rejected outright.
func ValidateLead(req *models.LeadSubmissionRequest) (*Lead, *FieldError) {
	lead := &Lead{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Phone:    strings.TrimSpace(req.Phone),
		Message:  strings.TrimSpace(req.Message),
		Location: strings.TrimSpace(req.Location),
	}

	if ferr := firstError(validate.Struct(lead)); ferr != nil {
		return nil, ferr
	}
	return lead, nil
}

// ValidateContact validates a raw contact submission with the same rules as
// ValidateLead minus the location field.
func ValidateContact(req *models.ContactSubmissionRequest) (*Contact, *FieldError) {
	contact := &Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}

	if ferr := firstError(validate.Struct(contact)); ferr != nil {
		return nil, ferr
	}
	return contact, nil
}

// firstError converts a validator error into a FieldError for the first
// failing field. validator.ValidationErrors preserves struct field order, so
// index zero is the first field that failed.
func firstError(err error) *FieldError {
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return &FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		}
	}

	return &FieldError{Field: "", Message: "invalid submission"}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email", "email_domain":
		return "Invalid email format"
	case "len", "number":
		return fe.Field() + " must be exactly 10 digits"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
