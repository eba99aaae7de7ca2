package main

import (
	"errors"
	"fmt"
	"time"
)

// errInvalidPeriod is returned for a period value not present in periodDays.
var errInvalidPeriod = errors.New("invalid period")

// periodDays maps symbolic period values to their calendar-day counts.
// This is the single source of truth for valid periods — also used for
// input validation in the analytics handlers and for listPeriods.
var periodDays = map[string]int{
	"7d":   7,
	"14d":  14,
	"30d":  30,
	"90d":  90,
	"180d": 180,
	"365d": 365,
}

// periodOrder fixes the display order of listPeriods; map iteration order
// is random in Go.
var periodOrder = []string{"7d", "14d", "30d", "90d", "180d", "365d"}

// periodLabels maps period values to their UI labels.
var periodLabels = map[string]string{
	"7d":   "Last 7 days",
	"14d":  "Last 2 weeks",
	"30d":  "Last 30 days",
	"90d":  "Last 3 months",
	"180d": "Last 6 months",
	"365d": "Last year",
}

// resolvePeriod maps a symbolic period to a concrete [start, end] window of
// calendar days ending at the reference date inclusive, so "7d" resolved on
// a Sunday starts the previous Monday. Both bounds are midnight UTC.
// The reference date is an explicit parameter — resolution never reads the
// clock, so identical inputs always resolve to identical windows.
func resolvePeriod(period string, reference time.Time) (start, end time.Time, err error) {
	days, ok := periodDays[period]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", errInvalidPeriod, period)
	}
	end = midnightUTC(reference)
	start = end.AddDate(0, 0, -(days - 1))
	return start, end, nil
}

// listPeriods returns the selectable periods in display order, for UI
// population. Pure — no I/O.
func listPeriods() []periodOption {
	options := make([]periodOption, 0, len(periodOrder))
	for _, value := range periodOrder {
		options = append(options, periodOption{Value: value, Label: periodLabels[value]})
	}
	return options
}

// midnightUTC truncates a time to its calendar day at midnight UTC.
// time.Truncate(24h) is wrong for non-UTC times, so build the date directly.
func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar days in [start, end] inclusive.
// Both arguments are expected at midnight UTC.
func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
