package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"loft442-server/models"
	"loft442-server/ratelimit"
	"loft442-server/service"
)

// SendRequestHandler serves the inquiry submission endpoint.
type SendRequestHandler struct {
	sendRequestService *service.SendRequestService
	limiter            ratelimit.Store
}

func NewSendRequestHandler(sendRequestService *service.SendRequestService, limiter ratelimit.Store) *SendRequestHandler {
	return &SendRequestHandler{
		sendRequestService: sendRequestService,
		limiter:            limiter,
	}
}

// SendRequest handles POST /api/send-request. Checks run in a fixed order:
// rate limit, JSON decode, honeypot, required fields, date format, email
// format, email configuration, send.
func (h *SendRequestHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if !h.limiter.Allow(ip, time.Now()) {
		writeJSON(w, http.StatusTooManyRequests, models.RequestError{
			Error: "Too many requests. Please try again later.",
		})
		return
	}

	var payload models.SendRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, models.RequestError{
			Error: "Invalid JSON payload.",
		})
		return
	}

	// A filled honeypot means a bot: pretend success, send nothing.
	if payload.Website != "" {
		writeJSON(w, http.StatusOK, models.RequestAccepted{OK: true})
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

	if !h.sendRequestService.Configured() {
		writeJSON(w, http.StatusInternalServerError, models.RequestError{
			Error: "Email service not configured.",
		})
		return
	}

	id, err := h.sendRequestService.Submit(payload)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.RequestError{
			Error: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, models.RequestAccepted{OK: true, ID: id})
}
