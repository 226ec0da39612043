package server

import (
	"github.com/gorilla/mux"

	"loft442-server/server/handlers"
)

type Router struct {
	bookedDatesHandler *handlers.BookedDatesHandler
	sendRequestHandler *handlers.SendRequestHandler
	scheduleHandler    *handlers.ScheduleHandler
	reportsHandler     *handlers.ReportsHandler
	router             *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	bookedDatesHandler *handlers.BookedDatesHandler,
	sendRequestHandler *handlers.SendRequestHandler,
	scheduleHandler *handlers.ScheduleHandler,
	reportsHandler *handlers.ReportsHandler,
	router *mux.Router) *Router {
	return &Router{
		bookedDatesHandler: bookedDatesHandler,
		sendRequestHandler: sendRequestHandler,
		scheduleHandler:    scheduleHandler,
		reportsHandler:     reportsHandler,
		router:             router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(RequestID, RequestLogger)

	// expects ?month={YYYY-MM} (optional)
	r.router.HandleFunc("/api/booked-dates", r.bookedDatesHandler.GetBookedDates).Methods("GET")

	r.router.HandleFunc("/api/send-request", r.sendRequestHandler.SendRequest).Methods("POST")
	r.router.HandleFunc("/api/schedule", r.scheduleHandler.Schedule).Methods("POST")

	r.router.HandleFunc("/v1/reports/bookings", r.reportsHandler.GetBookingsReport).Methods("GET")

	r.router.HandleFunc("/ping", handlers.Ping).Methods("GET")
}
