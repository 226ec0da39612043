package resend

import (
	"github.com/google/uuid"

	"loft442-server/models"
)

// ResendApiClientMock records sends instead of calling the real API. Tests
// use it to assert whether the email collaborator was invoked at all.
type ResendApiClientMock struct {
	Sent []models.SendEmailRequest
	Err  error
}

// NewResendApiClientMock creates a new instance of ResendApiClientMock
func NewResendApiClientMock() *ResendApiClientMock {
	return &ResendApiClientMock{}
}

// SendEmail records the request and returns a fresh identifier.
func (c *ResendApiClientMock) SendEmail(request models.SendEmailRequest) (*models.SendEmailResponse, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	c.Sent = append(c.Sent, request)
	return &models.SendEmailResponse{ID: uuid.NewString()}, nil
}

// SetAPIKey is a no-op on the mock.
func (c *ResendApiClientMock) SetAPIKey(apiKey string) {}
