package handlers

import (
	"log"
	"net/http"

	"loft442-server/models"
	"loft442-server/service"
	"loft442-server/util"
)

// ReportsHandler serves operational reports about the booking calendar.
type ReportsHandler struct {
	bookedDatesService *service.BookedDatesService
}

func NewReportsHandler(bookedDatesService *service.BookedDatesService) *ReportsHandler {
	return &ReportsHandler{bookedDatesService: bookedDatesService}
}

// GetBookingsReport handles GET /v1/reports/bookings, rendering an HTML
// bar chart of booked-day counts per month.
func (h *ReportsHandler) GetBookingsReport(w http.ResponseWriter, r *http.Request) {
	bookedDays := h.bookedDatesService.GetBookedDays(models.DateRange{})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderMonthlyBookingsChart(w, bookedDays); err != nil {
		log.Println("Error rendering bookings report:", err)
	}
}
