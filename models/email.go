package models

// SendEmailRequest is the payload for the transactional email API's
// POST /emails endpoint.
type SendEmailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// SendEmailResponse carries the identifier of an accepted email.
type SendEmailResponse struct {
	ID string `json:"id"`
}

// ResendError is the structured error body the email API returns on failure.
type ResendError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}
