package main

import "time"

// Heatmap bucketing: lays a window of daily goal results onto a
// Sunday-aligned calendar grid with discrete achievement levels, for
// GitHub-style contribution rendering.

// achievementLevel buckets an overall score into the 0-4 color scale.
// Level 0 is reserved for days with no data; scored days start at level 1
// even at 0% so "logged but missed everything" is visually distinct from
// "never logged". The top band is open-ended.
func achievementLevel(day dailyGoalResult) int {
	if !day.HasData {
		return 0
	}
	switch {
	case day.OverallScore >= 75:
		return 4
	case day.OverallScore >= 50:
		return 3
	case day.OverallScore >= 25:
		return 2
	default:
		return 1
	}
}

// buildHeatmap lays the window's day results onto full Sunday-to-Saturday
// weeks. The window is extended backward to the nearest Sunday and forward
// to the nearest Saturday; padding days and days absent from the result
// sequence render as level-0 placeholders. A month marker is emitted
// whenever a week's first slot lands in a month the running month hasn't
// reached yet, week 0 included.
func buildHeatmap(days []dailyGoalResult, windowStart, windowEnd time.Time) heatmapGrid {
	byDate := make(map[string]dailyGoalResult, len(days))
	for _, day := range days {
		byDate[day.Date.Format("2006-01-02")] = day
	}

	start := midnightUTC(windowStart)
	end := midnightUTC(windowEnd)
	// Weekday() is 0 for Sunday, so the offsets below align the grid edges.
	start = start.AddDate(0, 0, -int(start.Weekday()))
	end = end.AddDate(0, 0, int(time.Saturday-end.Weekday()))

	grid := heatmapGrid{Months: []monthMarker{}}
	var week [7]heatmapCell
	runningMonth := time.Month(0) // zero value matches no real month

	for d, slot := start, 0; !d.After(end); d = d.AddDate(0, 0, 1) {
		cell := heatmapCell{Date: DateOnly{d}}
		if day, ok := byDate[d.Format("2006-01-02")]; ok {
			cell.Level = achievementLevel(day)
			cell.HasData = day.HasData
		}
		week[slot] = cell

		if slot == 0 && d.Month() != runningMonth {
			runningMonth = d.Month()
			grid.Months = append(grid.Months, monthMarker{
				WeekIndex: len(grid.Weeks),
				Label:     d.Format("Jan"),
			})
		}

		slot++
		if slot == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = [7]heatmapCell{}
			slot = 0
		}
	}

	return grid
}
