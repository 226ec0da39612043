package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"loft442-server/api/resend"
	"loft442-server/models"
	"loft442-server/ratelimit"
	"loft442-server/server/handlers"
	"loft442-server/service"
)

// sanityAPIStub implements sanity.SanityAPI with canned data.
type sanityAPIStub struct {
	entries []models.DateEntry
}

func (s *sanityAPIStub) GetBookedDates() ([]models.DateEntry, error) {
	return s.entries, nil
}

func newTestRouter() *mux.Router {
	bookedDatesService := service.NewBookedDatesService(&sanityAPIStub{entries: []models.DateEntry{
		{Kind: models.DateEntryPlain, Date: "2025-06-05"},
	}}, true)
	sendRequestService := service.NewSendRequestService(resend.NewResendApiClientMock(), "from@example.com", "to@example.com", true)
	limiter := ratelimit.NewFixedWindowStore(ratelimit.Window, ratelimit.MaxRequests)

	muxRouter := mux.NewRouter()
	appRouter := NewRouter(
		handlers.NewBookedDatesHandler(bookedDatesService),
		handlers.NewSendRequestHandler(sendRequestService, limiter),
		handlers.NewScheduleHandler(),
		handlers.NewReportsHandler(bookedDatesService),
		muxRouter,
	)
	appRouter.RegisterRoutes()
	return muxRouter
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := newTestRouter()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		statusCode int
		contains   string
	}{
		{
			name:       "Get Booked Dates",
			method:     "GET",
			path:       "/api/booked-dates?month=2025-06",
			statusCode: 200,
			contains:   `"bookedDays":["2025-06-05"]`,
		},
		{
			name:       "Send Request Honeypot",
			method:     "POST",
			path:       "/api/send-request",
			body:       `{"website":"filled"}`,
			statusCode: 200,
			contains:   `"ok":true`,
		},
		{
			name:       "Schedule Invalid",
			method:     "POST",
			path:       "/api/schedule",
			body:       `{}`,
			statusCode: 400,
			contains:   "Missing required fields.",
		},
		{
			name:       "Bookings Report",
			method:     "GET",
			path:       "/v1/reports/bookings",
			statusCode: 200,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: 200,
			contains:   "pong",
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: 404,
		},
		{
			name:       "Wrong Method",
			method:     "GET",
			path:       "/api/send-request",
			statusCode: 405,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var req = httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.contains != "" && !strings.Contains(rr.Body.String(), test.contains) {
				t.Errorf("Expected response containing %s, got %s", test.contains, rr.Body.String())
			}
		})
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a generated X-Request-ID header")
	}

	req = httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("Expected the caller's request id to be kept, got %q", got)
	}
}
