package sanity

import (
	"fmt"

	"loft442-server/config"
	"loft442-server/models"
	"loft442-server/util"
)

// SanityApiClientMock embeds mocked logic for the sanity api client
type SanityApiClientMock struct {
	ResourcePath string
}

// NewSanityApiClientMock creates a new instance of SanityApiClientMock
// backed by the booked-dates fixture under resources/.
func NewSanityApiClientMock() *SanityApiClientMock {
	return &SanityApiClientMock{
		ResourcePath: config.GetResourcePath(config.BOOKED_DATES_RESOURCE),
	}
}

// GetBookedDates loads the raw availability entries from the JSON fixture.
func (c *SanityApiClientMock) GetBookedDates() ([]models.DateEntry, error) {
	entries, err := util.ReadBookedDatesFromJSON(c.ResourcePath)

	if err != nil {
		fmt.Println("Could not read booked dates from json")
		return nil, err
	}

	return entries, nil
}
