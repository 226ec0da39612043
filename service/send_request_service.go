package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"loft442-server/api/resend"
	"loft442-server/models"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationResult classifies a submission payload. The zero value with no
// missing fields and no format flags means the payload is acceptable.
type ValidationResult struct {
	MissingFields []string
	InvalidDate   bool
	InvalidEmail  bool
}

// OK reports whether the payload passed every check.
func (r ValidationResult) OK() bool {
	return len(r.MissingFields) == 0 && !r.InvalidDate && !r.InvalidEmail
}

// ValidateSendRequest checks an inquiry payload. Every missing required
// field is reported in one pass; format checks run only once all required
// fields are present, matching the response taxonomy of the API.
func ValidateSendRequest(payload models.SendRequestPayload) ValidationResult {
	required := []struct {
		name  string
		value string
	}{
		{"date", payload.Date},
		{"firstName", payload.FirstName},
		{"lastName", payload.LastName},
		{"partyType", payload.PartyType},
		{"phone", payload.Phone},
		{"email", payload.Email},
	}

	var result ValidationResult
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			result.MissingFields = append(result.MissingFields, field.name)
		}
	}
	if len(result.MissingFields) > 0 {
		return result
	}

	if err := validation.Validate(payload.Date, validation.Match(datePattern)); err != nil {
		result.InvalidDate = true
		return result
	}
	if err := validation.Validate(payload.Email, validation.Match(emailPattern)); err != nil {
		result.InvalidEmail = true
	}
	return result
}

// SendRequestService forwards validated inquiries to the venue inbox.
type SendRequestService struct {
	resendApi  resend.ResendAPI
	from       string
	to         string
	configured bool
}

// NewSendRequestService constructs a new SendRequestService. configured
// should be false when the email credential or recipient is absent.
func NewSendRequestService(resendApi resend.ResendAPI, from, to string, configured bool) *SendRequestService {
	return &SendRequestService{
		resendApi:  resendApi,
		from:       from,
		to:         to,
		configured: configured,
	}
}

// Configured reports whether submissions can actually be forwarded.
func (s *SendRequestService) Configured() bool {
	return s.configured
}

// Submit sends the inquiry email and returns the send identifier.
func (s *SendRequestService) Submit(payload models.SendRequestPayload) (string, error) {
	request := models.SendEmailRequest{
		From:    s.from,
		To:      s.to,
		ReplyTo: payload.Email,
		Subject: "New Event Request – " + payload.PartyType,
		Text:    composeRequestEmail(payload),
	}

	response, err := s.resendApi.SendEmail(request)
	if err != nil {
		return "", err
	}
	return response.ID, nil
}

// composeRequestEmail renders the plain-text notification for the venue.
func composeRequestEmail(payload models.SendRequestPayload) string {
	message := strings.TrimSpace(payload.Message)
	if message == "" {
		message = "None"
	}

	return fmt.Sprintf(`New Event Request – Loft 442

Name: %s %s
Email: %s
Phone: %s
Type of Party: %s
Date: %s

Message:
%s
`,
		payload.FirstName, payload.LastName,
		payload.Email,
		payload.Phone,
		payload.PartyType,
		formatDateLabel(payload.Date),
		message,
	)
}

// formatDateLabel renders "2025-06-01" as "June 1, 2025", falling back to
// the raw value when it does not parse as a calendar date.
func formatDateLabel(date string) string {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return parsed.Format("January 2, 2006")
}
