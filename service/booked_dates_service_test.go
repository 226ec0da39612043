package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"loft442-server/models"
)

// sanityAPIStub implements sanity.SanityAPI with canned data.
type sanityAPIStub struct {
	entries []models.DateEntry
	err     error
}

func (s *sanityAPIStub) GetBookedDates() ([]models.DateEntry, error) {
	return s.entries, s.err
}

func TestGetBookedDays_DedupeAndOrder(t *testing.T) {
	stub := &sanityAPIStub{entries: []models.DateEntry{
		{Kind: models.DateEntryPlain, Date: "2025-06-10"},
		{Kind: models.DateEntryPlain, Date: "2025-06-05"},
		{Kind: models.DateEntryPlain, Date: "2025-06-10"},
		{Kind: models.DateEntryRange, Start: "2025-06-05"},
	}}
	svc := NewBookedDatesService(stub, true)

	days := svc.GetBookedDays(models.DateRange{})

	assert.Equal(t, []string{"2025-06-05", "2025-06-10"}, days)
}

func TestGetBookedDays_SkipsCancelledAndMalformed(t *testing.T) {
	stub := &sanityAPIStub{entries: []models.DateEntry{
		{Kind: models.DateEntryPlain, Date: "2025-06-05"},
		{Kind: models.DateEntryRange, Start: "2025-08-15", Status: "Cancelled"},
		{Kind: models.DateEntryPlain, Date: "not-a-date"},
		{Kind: models.DateEntryInvalid},
		{Kind: models.DateEntryRange, End: "2025-09-01"},
	}}
	svc := NewBookedDatesService(stub, true)

	days := svc.GetBookedDays(models.DateRange{})

	assert.Equal(t, []string{"2025-06-05", "2025-09-01"}, days)
}

func TestGetBookedDays_RangeFilterIsIdempotent(t *testing.T) {
	stub := &sanityAPIStub{entries: []models.DateEntry{
		{Kind: models.DateEntryPlain, Date: "2025-05-31"},
		{Kind: models.DateEntryPlain, Date: "2025-06-05"},
		{Kind: models.DateEntryPlain, Date: "2025-06-30"},
		{Kind: models.DateEntryPlain, Date: "2025-07-01"},
	}}
	svc := NewBookedDatesService(stub, true)
	dateRange := models.DateRange{From: "2025-06-01", To: "2025-06-30"}

	first := svc.GetBookedDays(dateRange)
	assert.Equal(t, []string{"2025-06-05", "2025-06-30"}, first)

	// Feeding the filtered result back through the same filter changes nothing.
	stub.entries = nil
	for _, day := range first {
		stub.entries = append(stub.entries, models.DateEntry{Kind: models.DateEntryPlain, Date: day})
	}
	second := svc.GetBookedDays(dateRange)
	assert.Equal(t, first, second)
}

func TestGetBookedDays_FetchErrorDegradesToEmpty(t *testing.T) {
	stub := &sanityAPIStub{err: errors.New("network down")}
	svc := NewBookedDatesService(stub, true)

	days := svc.GetBookedDays(models.DateRange{})

	assert.NotNil(t, days)
	assert.Empty(t, days)
}

func TestGetBookedDays_UnconfiguredReturnsEmpty(t *testing.T) {
	stub := &sanityAPIStub{entries: []models.DateEntry{
		{Kind: models.DateEntryPlain, Date: "2025-06-05"},
	}}
	svc := NewBookedDatesService(stub, false)

	days := svc.GetBookedDays(models.DateRange{})

	assert.NotNil(t, days)
	assert.Empty(t, days)
}
