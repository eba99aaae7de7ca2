package main

import (
	"errors"
	"testing"
	"time"
)

// TestResolvePeriod_Window verifies that each supported period resolves to
// a window of the right length ending at the reference date.
func TestResolvePeriod_Window(t *testing.T) {
	reference := time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)

	cases := []struct {
		period string
		days   int
	}{
		{"7d", 7},
		{"14d", 14},
		{"30d", 30},
		{"90d", 90},
		{"180d", 180},
		{"365d", 365},
	}

	for _, tc := range cases {
		t.Run(tc.period, func(t *testing.T) {
			start, end, err := resolvePeriod(tc.period, reference)
			if err != nil {
				t.Fatalf("resolvePeriod(%q) returned error: %v", tc.period, err)
			}
			wantEnd := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
			if !end.Equal(wantEnd) {
				t.Errorf("end = %v, want %v", end, wantEnd)
			}
			if got := daysBetween(start, end); got != tc.days {
				t.Errorf("window covers %d days, want %d", got, tc.days)
			}
		})
	}
}

// TestResolvePeriod_SevenDaysInclusive pins the exact bounds: 7d resolved on
// a Sunday starts the previous Monday.
func TestResolvePeriod_SevenDaysInclusive(t *testing.T) {
	reference := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC) // a Sunday
	start, _, err := resolvePeriod("7d", reference)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC) // the Monday before
	if !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
}

// TestResolvePeriod_Invalid verifies unknown symbols fail with the sentinel.
func TestResolvePeriod_Invalid(t *testing.T) {
	for _, period := range []string{"", "8d", "week", "7D"} {
		_, _, err := resolvePeriod(period, time.Now())
		if !errors.Is(err, errInvalidPeriod) {
			t.Errorf("resolvePeriod(%q) error = %v, want errInvalidPeriod", period, err)
		}
	}
}

// TestResolvePeriod_Deterministic verifies resolution depends only on the
// explicit reference date — two calls with the same inputs match exactly.
func TestResolvePeriod_Deterministic(t *testing.T) {
	reference := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	s1, e1, _ := resolvePeriod("30d", reference)
	s2, e2, _ := resolvePeriod("30d", reference)
	if !s1.Equal(s2) || !e1.Equal(e2) {
		t.Errorf("same inputs resolved differently: [%v,%v] vs [%v,%v]", s1, e1, s2, e2)
	}
}

// TestListPeriods verifies the options come back in display order with
// labels for every entry.
func TestListPeriods(t *testing.T) {
	options := listPeriods()
	if len(options) != len(periodOrder) {
		t.Fatalf("got %d options, want %d", len(options), len(periodOrder))
	}
	for i, opt := range options {
		if opt.Value != periodOrder[i] {
			t.Errorf("option %d value = %q, want %q", i, opt.Value, periodOrder[i])
		}
		if opt.Label == "" {
			t.Errorf("option %q has empty label", opt.Value)
		}
	}
}

// TestMidnightUTC verifies non-UTC times truncate to the correct UTC day.
func TestMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	in := time.Date(2026, 8, 23, 2, 30, 0, 0, loc) // 2026-08-22 17:30 UTC
	got := midnightUTC(in)
	want := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("midnightUTC = %v, want %v", got, want)
	}
}
