package resend

import (
	"encoding/json"
	"errors"

	"loft442-server/api"
	"loft442-server/models"
)

// ResendApiClient embeds the common HTTPClient
type ResendApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKey string
}

// NewResendApiClient creates a new instance of ResendApiClient
func NewResendApiClient(httpClient *api.HTTPClient) *ResendApiClient {
	return &ResendApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey sets the bearer credential used on every send.
func (c *ResendApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// SendEmail submits an email and returns its identifier. When the API
// rejects the send with a structured error body, that message is surfaced
// so the caller can report why the inquiry did not go through.
func (c *ResendApiClient) SendEmail(request models.SendEmailRequest) (*models.SendEmailResponse, error) {
	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	var response models.SendEmailResponse
	err := c.Request("POST", "/emails", headers, request, &response)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			var resendErr models.ResendError
			if jsonErr := json.Unmarshal(statusErr.Body, &resendErr); jsonErr == nil && resendErr.Message != "" {
				return nil, errors.New(resendErr.Message)
			}
		}
		return nil, err
	}
	return &response, nil
}
