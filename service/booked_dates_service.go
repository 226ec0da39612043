package service

import (
	"log"
	"sort"

	"loft442-server/api/sanity"
	"loft442-server/models"
)

// BookedDatesService resolves the canonical booked-day set for the venue's
// single availability document.
type BookedDatesService struct {
	sanityApi  sanity.SanityAPI
	configured bool
}

// NewBookedDatesService constructs a new BookedDatesService. configured
// should be false when the deployment has no usable Sanity project, in
// which case every query yields an empty set.
func NewBookedDatesService(sanityApi sanity.SanityAPI, configured bool) *BookedDatesService {
	return &BookedDatesService{
		sanityApi:  sanityApi,
		configured: configured,
	}
}

// GetBookedDays fetches the raw entries, normalizes them, deduplicates,
// sorts ascending, and filters to the given range. Fetch failures are
// absorbed into an empty result: the availability calendar would rather
// show no bookings than an error state.
func (s *BookedDatesService) GetBookedDays(dateRange models.DateRange) []string {
	days := []string{}

	if !s.configured {
		return days
	}

	entries, err := s.sanityApi.GetBookedDates()
	if err != nil {
		log.Printf("[BookedDatesService] failed to fetch booked dates, returning empty: %v", err)
		return days
	}

	seen := make(map[string]bool)
	for _, e := range entries {
		for _, day := range e.Normalize() {
			if seen[day] {
				continue
			}
			seen[day] = true
			if dateRange.Contains(day) {
				days = append(days, day)
			}
		}
	}

	sort.Strings(days)
	return days
}
