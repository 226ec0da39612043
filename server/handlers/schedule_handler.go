package handlers

import (
	"encoding/json"
	"net/http"

	"loft442-server/models"
	"loft442-server/service"
)

// ScheduleHandler validates schedule requests without forwarding them
// anywhere. Older builds of the booking form still post here.
type ScheduleHandler struct {
}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// Schedule handles POST /api/schedule: the same validation taxonomy as
// send-request, minus the rate limit, honeypot, and email forwarding.
func (h *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var payload models.SendRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, models.RequestError{
			Error: "Invalid JSON payload.",
		})
		return
	}

	result := service.ValidateSendRequest(payload)
	if len(result.MissingFields) > 0 {
		writeJSON(w, http.StatusBadRequest, models.RequestError{
			Error:  "Missing required fields.",
			Fields: result.MissingFields,
		})
		return
	}
	if result.InvalidDate {
		writeJSON(w, http.StatusBadRequest, models.RequestError{
			Error: "Invalid date format.",
		})
		return
	}
	if result.InvalidEmail {
		writeJSON(w, http.StatusBadRequest, models.RequestError{
			Error: "Invalid email address.",
		})
		return
	}

	writeJSON(w, http.StatusOK, models.RequestAccepted{OK: true})
}
