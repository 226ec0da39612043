package util

import (
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderMonthlyBookingsChart renders a bar chart of booked-day counts per
// month into w. Days are canonical YYYY-MM-DD strings, so the month is the
// first seven characters.
func RenderMonthlyBookingsChart(w io.Writer, bookedDays []string) error {
	counts := make(map[string]int)
	for _, day := range bookedDays {
		if len(day) < 7 {
			continue
		}
		counts[day[:7]]++
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)

	// Create a new bar chart.
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Loft 442 Bookings",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Booked days per month",
		}),
	)

	items := make([]opts.BarData, 0, len(months))
	for _, month := range months {
		items = append(items, opts.BarData{Value: counts[month]})
	}
	bar.SetXAxis(months).AddSeries("Booked days", items)

	// Render the chart into the writer.
	return bar.Render(w)
}
