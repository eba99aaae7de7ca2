package main

import (
	"errors"
	"fmt"
)

// Period-over-period comparison: sums one metric across two equal-length
// windows of day results and reports the change.

// errPeriodLengthMismatch is returned when the two compared windows cover a
// different number of calendar days — "this week vs last month" is not a
// meaningful comparison.
var errPeriodLengthMismatch = errors.New("periods must cover the same number of days")

// validMetrics is the set of metrics the comparative aggregator can sum,
// in display order.
var validMetrics = []string{"calories", "protein", "carbs", "fat"}

func isValidMetric(metric string) bool {
	for _, m := range validMetrics {
		if m == metric {
			return true
		}
	}
	return false
}

// metricActual extracts the summed-intake side of a metric for one day.
// Callers validate the metric name first; unknown metrics read as 0.
func metricActual(day dailyGoalResult, metric string) float64 {
	switch metric {
	case "calories":
		return day.Calories.Actual
	case "protein":
		return day.Protein.Actual
	case "carbs":
		return day.Carbs.Actual
	case "fat":
		return day.Fat.Actual
	}
	return 0
}

// comparePeriods sums a metric's actual over the current and previous
// windows and reports delta and percent change. Both windows must span the
// same number of calendar days (day results for silent days are still
// present with HasData=false, so slice length equals window length).
// PercentChange is nil when the previous total is 0: the change is
// undefined, and reporting it as infinite would poison any chart fed by it.
func comparePeriods(current, previous []dailyGoalResult, metric string, currentLabel, previousLabel string) (comparisonResult, error) {
	if len(current) != len(previous) {
		return comparisonResult{}, fmt.Errorf("%w: %d vs %d",
			errPeriodLengthMismatch, len(current), len(previous))
	}

	result := comparisonResult{
		CurrentPeriod:  currentLabel,
		PreviousPeriod: previousLabel,
		Metric:         metric,
	}
	for _, day := range current {
		result.CurrentValue += metricActual(day, metric)
	}
	for _, day := range previous {
		result.PreviousValue += metricActual(day, metric)
	}
	result.Delta = result.CurrentValue - result.PreviousValue
	if result.PreviousValue != 0 {
		pct := 100 * result.Delta / result.PreviousValue
		result.PercentChange = &pct
	}
	return result, nil
}
