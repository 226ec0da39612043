package models

// SendRequestPayload is the JSON body of POST /api/send-request and
// POST /api/schedule. Website is a honeypot: the booking form hides it,
// so a non-empty value marks the submission as automated.
type SendRequestPayload struct {
	Date      string `json:"date"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	PartyType string `json:"partyType"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Website   string `json:"website"`
}
