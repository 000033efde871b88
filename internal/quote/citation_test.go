package quote

import (
	"testing"
	"time"
)

func TestFormatCitation(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		speaker string
		rawDate string
		want    string
	}{
		{"valid date", "Test Channel", "20240115", "Test Channel, (Jan 2024)"},
		{"december", "Jane Doe", "20231201", "Jane Doe, (Dec 2023)"},
		{"empty date falls back to now", "Someone", "", "Someone, (Mar 2025)"},
		{"malformed date falls back to now", "Someone", "notadate", "Someone, (Mar 2025)"},
		{"month out of range falls back", "Someone", "20241301", "Someone, (Mar 2025)"},
		{"month zero falls back", "Someone", "20240001", "Someone, (Mar 2025)"},
		{"short date falls back", "Someone", "2024", "Someone, (Mar 2025)"},
		{"six chars falls back", "Someone", "202401", "Someone, (Mar 2025)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCitationAt(tt.speaker, tt.rawDate, now); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
