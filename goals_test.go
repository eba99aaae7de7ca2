package main

import (
	"testing"
	"time"
)

// makeTargets constructs a targetSet with the given macro targets, for use
// across the evaluator tests.
func makeTargets(calories, protein, carbs, fat int) targetSet {
	return targetSet{Calories: calories, ProteinG: protein, CarbsG: carbs, FatG: fat}
}

// makeDayLog constructs a dayLog with data for the given date and totals.
func makeDayLog(date time.Time, calories int, protein, carbs, fat float64) dayLog {
	return dayLog{
		Date:     DateOnly{date},
		Calories: calories,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
		HasData:  true,
	}
}

var testDate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

/* ─── Percentage rules ───────────────────────────────────────────────── */

// TestEvaluateDay_ExactTargets verifies a day hitting every target exactly
// scores 100 with 100% on each metric.
func TestEvaluateDay_ExactTargets(t *testing.T) {
	day := makeDayLog(testDate, 2000, 150, 200, 65)
	result := evaluateDay(day, makeTargets(2000, 150, 200, 65))

	for name, m := range map[string]metricResult{
		"calories": result.Calories,
		"protein":  result.Protein,
		"carbs":    result.Carbs,
		"fat":      result.Fat,
	} {
		if m.Percentage != 100 {
			t.Errorf("%s percentage = %f, want 100", name, m.Percentage)
		}
	}
	if result.OverallScore != 100 {
		t.Errorf("overall score = %f, want 100", result.OverallScore)
	}
}

// TestEvaluateDay_ZeroTarget verifies a zero target yields exactly 0,
// never NaN or Inf, and leaves the other metrics untouched.
func TestEvaluateDay_ZeroTarget(t *testing.T) {
	day := makeDayLog(testDate, 2000, 150, 200, 65)
	result := evaluateDay(day, makeTargets(0, 150, 200, 65))

	if result.Calories.Percentage != 0 {
		t.Errorf("calories percentage = %f, want exactly 0", result.Calories.Percentage)
	}
	// Overall = (0 + 100 + 100 + 100) / 4
	if result.OverallScore != 75 {
		t.Errorf("overall score = %f, want 75", result.OverallScore)
	}
}

// TestEvaluateDay_NegativeTarget verifies malformed negative targets are
// treated as 0, not as an error and not as a negative percentage.
func TestEvaluateDay_NegativeTarget(t *testing.T) {
	day := makeDayLog(testDate, 2000, 150, 200, 65)
	result := evaluateDay(day, makeTargets(-500, 150, 200, 65))

	if result.Calories.Percentage != 0 {
		t.Errorf("calories percentage = %f, want 0", result.Calories.Percentage)
	}
	if result.Calories.Target != 0 {
		t.Errorf("calories target normalized to %f, want 0", result.Calories.Target)
	}
}

// TestEvaluateDay_AllZeroTargets verifies a user with no targets configured
// degrades to an all-zero result instead of failing.
func TestEvaluateDay_AllZeroTargets(t *testing.T) {
	day := makeDayLog(testDate, 2000, 150, 200, 65)
	result := evaluateDay(day, targetSet{})
	if result.OverallScore != 0 {
		t.Errorf("overall score = %f, want 0", result.OverallScore)
	}
}

/* ─── Capping law ────────────────────────────────────────────────────── */

// TestEvaluateDay_OverconsumptionUncappedPerMetric verifies the raw
// per-metric percentage is NOT capped (the UI shows real overconsumption)
// while the overall score caps each contribution at 150.
func TestEvaluateDay_OverconsumptionUncappedPerMetric(t *testing.T) {
	// 180% calories, 100% on everything else.
	day := makeDayLog(testDate, 3600, 150, 200, 65)
	result := evaluateDay(day, makeTargets(2000, 150, 200, 65))

	if result.Calories.Percentage != 180 {
		t.Errorf("calories percentage = %f, want uncapped 180", result.Calories.Percentage)
	}
	// Overall = (150 + 100 + 100 + 100) / 4 — the 180 contributes only 150.
	if result.OverallScore != 112.5 {
		t.Errorf("overall score = %f, want 112.5", result.OverallScore)
	}
}

// TestEvaluateDay_OverallScoreNeverExceeds150 verifies the capping law holds
// no matter how extreme intake is.
func TestEvaluateDay_OverallScoreNeverExceeds150(t *testing.T) {
	day := makeDayLog(testDate, 20000, 1500, 2000, 650) // 10x every target
	result := evaluateDay(day, makeTargets(2000, 150, 200, 65))

	if result.OverallScore != 150 {
		t.Errorf("overall score = %f, want exactly 150", result.OverallScore)
	}
}

/* ─── No-data days ───────────────────────────────────────────────────── */

// TestEvaluateDay_NoData verifies a day without intake data scores 0 and
// keeps the HasData=false flag for downstream exclusion.
func TestEvaluateDay_NoData(t *testing.T) {
	day := dayLog{Date: DateOnly{testDate}}
	result := evaluateDay(day, makeTargets(2000, 150, 200, 65))

	if result.HasData {
		t.Error("expected HasData=false to propagate")
	}
	if result.OverallScore != 0 {
		t.Errorf("overall score = %f, want 0 for no-data day", result.OverallScore)
	}
}

/* ─── Idempotence ────────────────────────────────────────────────────── */

// TestEvaluateDay_Idempotent verifies two evaluations of the same input are
// identical — there is no hidden clock or state.
func TestEvaluateDay_Idempotent(t *testing.T) {
	day := makeDayLog(testDate, 2345, 123.4, 210.7, 71.2)
	targets := makeTargets(2000, 150, 200, 65)
	a := evaluateDay(day, targets)
	b := evaluateDay(day, targets)
	if a != b {
		t.Errorf("same input evaluated differently:\n%+v\n%+v", a, b)
	}
}

/* ─── Goal type lookup ───────────────────────────────────────────────── */

// TestGoalPercentage verifies each goal type reads its own metric and that
// "overall" reads the blended score.
func TestGoalPercentage(t *testing.T) {
	day := makeDayLog(testDate, 1000, 75, 100, 65) // 50%, 50%, 50%, 100%
	result := evaluateDay(day, makeTargets(2000, 150, 200, 65))

	cases := map[string]float64{
		"calories": 50,
		"protein":  50,
		"carbs":    50,
		"fat":      100,
		"overall":  62.5,
	}
	for goalType, want := range cases {
		if got := goalPercentage(result, goalType); got != want {
			t.Errorf("goalPercentage(%s) = %f, want %f", goalType, got, want)
		}
	}
	if got := goalPercentage(result, "weight"); got != 0 {
		t.Errorf("goalPercentage(unknown) = %f, want 0", got)
	}
}
