package main

// Daily goal evaluation: turns one day's summed intake plus the targets in
// effect for that date into per-metric achievement percentages and a
// blended overall score.

// overallScoreCap bounds each metric's contribution to the overall score.
// One wildly over-consumed metric (say 300% of fat) must not drag the mean
// above what the other metrics support; raw per-metric percentages stay
// uncapped for display.
const overallScoreCap = 150.0

// metricPercentage computes 100*actual/target for one metric. A target of
// zero or less (including malformed negative targets) yields exactly 0 —
// never NaN or Inf.
func metricPercentage(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return 100 * actual / target
}

// newMetricResult pairs an actual with its target. Negative targets are
// normalized to 0 so the stored Target matches the percentage rule.
func newMetricResult(actual, target float64) metricResult {
	if target < 0 {
		target = 0
	}
	return metricResult{
		Actual:     actual,
		Target:     target,
		Percentage: metricPercentage(actual, target),
	}
}

// capped bounds a percentage to [0, overallScoreCap] for score blending.
func capped(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > overallScoreCap {
		return overallScoreCap
	}
	return pct
}

// evaluateDay combines one day's logged totals with the targets valid for
// that date. The overall score is the arithmetic mean of the four capped
// metric percentages; a day with no intake data scores 0 and keeps
// HasData=false so aggregations can exclude it from denominators.
// Pure and total: never fails for any input shape.
func evaluateDay(day dayLog, targets targetSet) dailyGoalResult {
	result := dailyGoalResult{
		Date:      day.Date,
		Calories:  newMetricResult(float64(day.Calories), float64(targets.Calories)),
		Protein:   newMetricResult(day.ProteinG, float64(targets.ProteinG)),
		Carbs:     newMetricResult(day.CarbsG, float64(targets.CarbsG)),
		Fat:       newMetricResult(day.FatG, float64(targets.FatG)),
		WeightLBS: day.WeightLBS,
		HasData:   day.HasData,
	}
	if !day.HasData {
		return result
	}
	result.OverallScore = (capped(result.Calories.Percentage) +
		capped(result.Protein.Percentage) +
		capped(result.Carbs.Percentage) +
		capped(result.Fat.Percentage)) / 4
	return result
}

// goalPercentage extracts the uncapped percentage for a goal type from a
// day result. "overall" returns the blended score, which is capped by
// construction. Callers validate the goal type against validGoalTypes
// before reaching here; an unknown type falls through to 0.
func goalPercentage(day dailyGoalResult, goalType string) float64 {
	switch goalType {
	case "calories":
		return day.Calories.Percentage
	case "protein":
		return day.Protein.Percentage
	case "carbs":
		return day.Carbs.Percentage
	case "fat":
		return day.Fat.Percentage
	case "overall":
		return day.OverallScore
	}
	return 0
}

// validGoalTypes is the set of goal types accepted by the consistency
// endpoint, in display order. Weight is deliberately absent: a day's weight
// has no meaningful achievement percentage against a long-horizon weight
// goal, so weight progress is served through the raw weight log instead.
var validGoalTypes = []string{"calories", "protein", "carbs", "fat", "overall"}

func isValidGoalType(goalType string) bool {
	for _, g := range validGoalTypes {
		if g == goalType {
			return true
		}
	}
	return false
}
