package sanity

import (
	"net/url"

	"loft442-server/api"
	"loft442-server/config"
	"loft442-server/models"
)

// SanityApiClient embeds the common HTTPClient
type SanityApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewSanityApiClient creates a new instance of SanityApiClient. The base URL
// carries the project id, API version, and dataset (see
// config.SanityQueryBaseURL).
func NewSanityApiClient(httpClient *api.HTTPClient) *SanityApiClient {
	return &SanityApiClient{
		HTTPClient: httpClient,
	}
}

// queryEnvelope mirrors the content lake's query response wrapper.
type queryEnvelope struct {
	Result []models.DateEntry `json:"result"`
	Ms     int                `json:"ms"`
}

// GetBookedDates runs the availability GROQ query and returns the raw
// bookedDates entries of the most recently updated availability document.
func (c *SanityApiClient) GetBookedDates() ([]models.DateEntry, error) {
	var response queryEnvelope
	endpoint := "?query=" + url.QueryEscape(config.SANITY_BOOKED_DATES_QUERY)
	err := c.Request("GET", endpoint, nil, nil, &response)
	if err != nil {
		return nil, err
	}
	return response.Result, nil
}
