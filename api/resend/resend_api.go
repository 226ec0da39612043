package resend

import (
	"loft442-server/models"
)

// ResendAPI defines the interface for the outbound transactional email API.
type ResendAPI interface {
	SendEmail(request models.SendEmailRequest) (*models.SendEmailResponse, error)
	SetAPIKey(apiKey string)
}
