package handlers

import (
	"net/http"

	"loft442-server/models"
	"loft442-server/service"
)

const MONTH_QUERY_ARG = "month"

// BookedDatesHandler serves the availability query endpoint.
type BookedDatesHandler struct {
	bookedDatesService *service.BookedDatesService
}

func NewBookedDatesHandler(bookedDatesService *service.BookedDatesService) *BookedDatesHandler {
	return &BookedDatesHandler{bookedDatesService: bookedDatesService}
}

// GetBookedDates handles GET /api/booked-dates. It answers 200 with a
// bookedDays array for every input; resolver failures have already been
// absorbed into an empty list by the service. Responses are marked
// no-store because stale availability would show the venue as free on a
// booked day.
func (h *BookedDatesHandler) GetBookedDates(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get(MONTH_QUERY_ARG)

	dateRange := service.BuildMonthRange(month)
	bookedDays := h.bookedDatesService.GetBookedDays(dateRange)

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, models.BookedDaysResponse{BookedDays: bookedDays})
}
