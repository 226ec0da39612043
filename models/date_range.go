package models

// DateRange bounds a booked-day query inclusively at either end. An empty
// From or To leaves that side unbounded; the zero value matches everything.
// Bounds and booked days are zero-padded YYYY-MM-DD strings, so plain string
// comparison orders them chronologically.
type DateRange struct {
	From string
	To   string
}

// Contains reports whether the given day falls inside the range.
func (r DateRange) Contains(day string) bool {
	if r.From != "" && day < r.From {
		return false
	}
	if r.To != "" && day > r.To {
		return false
	}
	return true
}

// IsZero reports whether the range is unbounded on both sides.
func (r DateRange) IsZero() bool {
	return r.From == "" && r.To == ""
}
