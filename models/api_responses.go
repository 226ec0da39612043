package models

// BookedDaysResponse is the body of GET /api/booked-dates.
type BookedDaysResponse struct {
	BookedDays []string `json:"bookedDays"`
}

// RequestAccepted is the success body for submission endpoints.
type RequestAccepted struct {
	OK bool   `json:"ok"`
	ID string `json:"id,omitempty"`
}

// RequestError is the failure body for submission endpoints. Fields lists
// every missing required field so the form can mark them all in one round trip.
type RequestError struct {
	OK     bool     `json:"ok"`
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}
