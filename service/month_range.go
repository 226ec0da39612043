package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"loft442-server/models"
)

// BuildMonthRange maps a YYYY-MM query value to the first and last calendar
// day of that month. Anything unparsable yields the unbounded range, so a
// bad month parameter widens the query instead of failing it.
func BuildMonthRange(month string) models.DateRange {
	if month == "" {
		return models.DateRange{}
	}

	parts := strings.Split(month, "-")
	if len(parts) < 2 {
		return models.DateRange{}
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return models.DateRange{}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return models.DateRange{}
	}

	// Day zero of the following month normalizes to this month's last day.
	lastDay := time.Date(year, time.Month(m)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	return models.DateRange{
		From: fmt.Sprintf("%04d-%02d-01", year, m),
		To:   fmt.Sprintf("%04d-%02d-%02d", year, m, lastDay),
	}
}
