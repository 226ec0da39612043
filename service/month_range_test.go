package service

import (
	"testing"

	"loft442-server/models"
)

func TestBuildMonthRange(t *testing.T) {
	tests := []struct {
		name  string
		month string
		want  models.DateRange
	}{
		{
			name:  "leap year february",
			month: "2024-02",
			want:  models.DateRange{From: "2024-02-01", To: "2024-02-29"},
		},
		{
			name:  "non-leap february",
			month: "2023-02",
			want:  models.DateRange{From: "2023-02-01", To: "2023-02-28"},
		},
		{
			name:  "thirty-one day month",
			month: "2025-07",
			want:  models.DateRange{From: "2025-07-01", To: "2025-07-31"},
		},
		{
			name:  "thirty day month",
			month: "2025-06",
			want:  models.DateRange{From: "2025-06-01", To: "2025-06-30"},
		},
		{
			name:  "december",
			month: "2025-12",
			want:  models.DateRange{From: "2025-12-01", To: "2025-12-31"},
		},
		{
			name:  "unpadded month",
			month: "2025-6",
			want:  models.DateRange{From: "2025-06-01", To: "2025-06-30"},
		},
		{
			name:  "month out of range",
			month: "2025-13",
			want:  models.DateRange{},
		},
		{
			name:  "month zero",
			month: "2025-00",
			want:  models.DateRange{},
		},
		{
			name:  "absent",
			month: "",
			want:  models.DateRange{},
		},
		{
			name:  "no separator",
			month: "202506",
			want:  models.DateRange{},
		},
		{
			name:  "non-numeric",
			month: "../../etc",
			want:  models.DateRange{},
		},
		{
			name:  "trailing garbage",
			month: "2025-junk",
			want:  models.DateRange{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := BuildMonthRange(test.month)
			if got != test.want {
				t.Errorf("BuildMonthRange(%q) = %+v; want %+v", test.month, got, test.want)
			}
		})
	}
}
