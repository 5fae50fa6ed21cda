package sheet

import (
	"testing"
	"time"
)

// 2025-05-01, mid-afternoon local time. Days-remaining must not care about
// the time of day.
var testNow = time.Date(2025, 5, 1, 14, 30, 12, 0, time.Local)

func TestParseDateSerial(t *testing.T) {
	// Serial 45787 is 10.05.2025 in the 1900 date system.
	dv := ParseDate("45787", testNow)
	if !dv.Valid {
		t.Fatal("serial date should parse")
	}
	if dv.Display != "10.05.2025" {
		t.Errorf("Display = %q, want 10.05.2025", dv.Display)
	}
	if dv.DaysRemaining != 9 {
		t.Errorf("DaysRemaining = %d, want 9", dv.DaysRemaining)
	}
}

func TestParseDateSerialWithTimeFraction(t *testing.T) {
	dv := ParseDate("45787.75", testNow)
	if !dv.Valid {
		t.Fatal("fractional serial should parse")
	}
	if dv.Display != "10.05.2025" {
		t.Errorf("Display = %q, want 10.05.2025", dv.Display)
	}
	if dv.DaysRemaining != 9 {
		t.Errorf("DaysRemaining = %d, want 9", dv.DaysRemaining)
	}
}

func TestParseDateStrings(t *testing.T) {
	cases := []struct {
		raw     string
		display string
		days    int
	}{
		{"10.05.2025", "10.05.2025", 9},
		{"2.5.2025", "02.05.2025", 1},
		{"2025-05-10", "10.05.2025", 9},
		{"2025-05-10T00:00:00Z", "10.05.2025", 9},
		{"05/10/2025", "05.10.2025", 157}, // ambiguous slash date reads day-first
		{"05/23/2025", "23.05.2025", 22},  // month-first fallback when day-first cannot parse
		{"28.04.2025", "28.04.2025", -3},
	}
	for _, tc := range cases {
		dv := ParseDate(tc.raw, testNow)
		if !dv.Valid {
			t.Errorf("ParseDate(%q) should be valid", tc.raw)
			continue
		}
		if dv.Display != tc.display {
			t.Errorf("ParseDate(%q).Display = %q, want %q", tc.raw, dv.Display, tc.display)
		}
		if dv.DaysRemaining != tc.days {
			t.Errorf("ParseDate(%q).DaysRemaining = %d, want %d", tc.raw, dv.DaysRemaining, tc.days)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "gelmedi", "99", "12.2025", "undefined"} {
		if dv := ParseDate(raw, testNow); dv.Valid {
			t.Errorf("ParseDate(%q) should be invalid, got %+v", raw, dv)
		}
	}
}

func TestDaysRemainingIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, 5, 1, 23, 59, 59, 0, time.Local)
	early := time.Date(2025, 5, 1, 0, 0, 1, 0, time.Local)
	for _, now := range []time.Time{late, early} {
		dv := ParseDate("10.05.2025", now)
		if dv.DaysRemaining != 9 {
			t.Errorf("DaysRemaining at %v = %d, want 9", now, dv.DaysRemaining)
		}
	}
}

func TestDaysRemainingSameDay(t *testing.T) {
	dv := ParseDate("01.05.2025", testNow)
	if dv.DaysRemaining != 0 {
		t.Errorf("same-day DaysRemaining = %d, want 0", dv.DaysRemaining)
	}
}
