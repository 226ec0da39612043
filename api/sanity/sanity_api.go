package sanity

import (
	"loft442-server/models"
)

// SanityAPI defines the interface for the read-only queries the server
// issues against the content lake.
type SanityAPI interface {
	GetBookedDates() ([]models.DateEntry, error)
}
