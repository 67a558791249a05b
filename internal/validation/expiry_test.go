package validation

import (
	"testing"
	"time"
)

func TestIsExpired(t *testing.T) {
	ref := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		month   string
		year    string
		expired bool
	}{
		{"next month", "09", "2026", false},
		{"december same year", "12", "2026", false},
		{"next year", "01", "2027", false},
		{"far future", "12", "2099", false},
		{"current month is already expired", "08", "2026", true},
		{"previous month", "07", "2026", true},
		{"january same year", "01", "2026", true},
		{"previous year", "12", "2025", true},
		{"previous year later month", "09", "2025", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsExpired(tc.month, tc.year, ref); got != tc.expired {
				t.Fatalf("IsExpired(%s, %s) = %t, expected %t", tc.month, tc.year, got, tc.expired)
			}
		})
	}
}

func TestIsExpired_MalformedInput(t *testing.T) {
	ref := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		month string
		year  string
	}{
		{"non-numeric month", "ab", "2099"},
		{"non-numeric year", "12", "20x9"},
		{"empty month", "", "2099"},
		{"empty year", "12", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !IsExpired(tc.month, tc.year, ref) {
				t.Fatalf("expected malformed expiry (%q, %q) to count as expired", tc.month, tc.year)
			}
		})
	}
}
