package util

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderMonthlyBookingsChart(t *testing.T) {
	var buf bytes.Buffer

	err := RenderMonthlyBookingsChart(&buf, []string{
		"2025-06-05",
		"2025-06-12",
		"2025-07-04",
		"bad", // too short to carry a month; skipped
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "Booked days per month") {
		t.Error("Expected the chart title in the rendered output")
	}
	if !strings.Contains(html, "2025-06") || !strings.Contains(html, "2025-07") {
		t.Error("Expected both months on the X axis")
	}
}

func TestRenderMonthlyBookingsChart_Empty(t *testing.T) {
	var buf bytes.Buffer

	if err := RenderMonthlyBookingsChart(&buf, nil); err != nil {
		t.Fatalf("Expected no error for an empty data set, got %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected a rendered page even with no data")
	}
}
