package main

// Consistency scoring: aggregates a window of daily goal results into a
// per-goal-type achievement share plus a trend label.

const (
	// defaultAchievementThreshold is the percentage at which a day counts
	// as achieved for consistency scoring.
	defaultAchievementThreshold = 80.0

	// trendTolerance is the minimum overall-score gap between the window's
	// halves before a trend counts as improving or declining.
	trendTolerance = 5.0

	// minTrendDays is the smallest number of counted days that can signal
	// a trend; below it the halves are too short to mean anything.
	minTrendDays = 4
)

const (
	trendImproving = "improving"
	trendDeclining = "declining"
	trendStable    = "stable"
)

// scoreConsistency aggregates an ordered window of day results for one goal
// type. Only days with data enter TotalDays — an unlogged day is missing
// evidence, not a failure. A day achieves when its uncapped percentage for
// the goal type is at or above the threshold; AveragePercentage is the mean
// of those uncapped values over counted days, so it can exceed 100.
// A window with no counted days scores 0 with a stable trend.
func scoreConsistency(days []dailyGoalResult, goalType string, threshold float64) consistencyScore {
	result := consistencyScore{GoalType: goalType, Trend: trendStable}

	counted := make([]dailyGoalResult, 0, len(days))
	for _, day := range days {
		if !day.HasData {
			continue
		}
		counted = append(counted, day)
		pct := goalPercentage(day, goalType)
		result.AveragePercentage += pct
		if pct >= threshold {
			result.AchievedDays++
		}
	}

	result.TotalDays = len(counted)
	if result.TotalDays == 0 {
		return result
	}
	result.AveragePercentage /= float64(result.TotalDays)
	result.Score = 100 * float64(result.AchievedDays) / float64(result.TotalDays)
	result.Trend = classifyTrend(counted)
	return result
}

// classifyTrend compares mean overall score between the chronological first
// and second halves of the counted days. An odd count drops the middle day
// so the halves stay equal. Fewer than minTrendDays counted days is
// insufficient signal and reads as stable.
func classifyTrend(counted []dailyGoalResult) string {
	if len(counted) < minTrendDays {
		return trendStable
	}

	half := len(counted) / 2
	earlier := meanOverallScore(counted[:half])
	later := meanOverallScore(counted[len(counted)-half:])

	switch {
	case later-earlier > trendTolerance:
		return trendImproving
	case earlier-later > trendTolerance:
		return trendDeclining
	default:
		return trendStable
	}
}

func meanOverallScore(days []dailyGoalResult) float64 {
	if len(days) == 0 {
		return 0
	}
	var sum float64
	for _, day := range days {
		sum += day.OverallScore
	}
	return sum / float64(len(days))
}
