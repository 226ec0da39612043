package models

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// DateEntryKind tags the shape a stored booked-date entry arrived in.
type DateEntryKind int

const (
	DateEntryInvalid DateEntryKind = iota
	DateEntryPlain
	DateEntryRange
)

var ymdPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Bookings that were called off keep their entry in the CMS with one of
// these statuses instead of being deleted.
var cancelledStatuses = map[string]bool{
	"cancelled": true,
	"canceled":  true,
}

// DateEntry is one raw item of the availability document's bookedDates
// array. The CMS stores either a plain "YYYY-MM-DD" string or an object
// carrying optional start/end/status fields; anything else is kept as
// an invalid entry rather than failing the whole decode.
type DateEntry struct {
	Kind   DateEntryKind
	Date   string // plain variant
	Start  string // range variant
	End    string
	Status string
}

type rangeStatusDate struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

// UnmarshalJSON classifies the incoming JSON shape into the tagged variant.
// It never returns an error: unrecognized shapes become invalid entries.
func (e *DateEntry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*e = DateEntry{Kind: DateEntryInvalid}
		return nil
	}

	var plain string
	if err := json.Unmarshal(trimmed, &plain); err == nil {
		*e = DateEntry{Kind: DateEntryPlain, Date: plain}
		return nil
	}

	var obj rangeStatusDate
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			*e = DateEntry{Kind: DateEntryRange, Start: obj.Start, End: obj.End, Status: obj.Status}
			return nil
		}
	}

	*e = DateEntry{Kind: DateEntryInvalid}
	return nil
}

// Normalize reduces the entry to zero or one canonical booked day.
// Cancelled entries contribute nothing regardless of their dates, and a
// range's start wins over its end when both are present and well formed.
func (e DateEntry) Normalize() []string {
	switch e.Kind {
	case DateEntryPlain:
		if ymdPattern.MatchString(e.Date) {
			return []string{e.Date}
		}
	case DateEntryRange:
		if cancelledStatuses[strings.ToLower(e.Status)] {
			return nil
		}
		if e.Start != "" && ymdPattern.MatchString(e.Start) {
			return []string{e.Start}
		}
		if e.End != "" && ymdPattern.MatchString(e.End) {
			return []string{e.End}
		}
	}
	return nil
}
