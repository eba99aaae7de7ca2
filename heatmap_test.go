package main

import (
	"testing"
	"time"
)

/* ─── Level bucketing ────────────────────────────────────────────────── */

// TestAchievementLevel verifies the band boundaries: closed-open bands with
// an open-ended top band, and level 0 reserved for no-data days.
func TestAchievementLevel(t *testing.T) {
	cases := []struct {
		name    string
		score   float64
		hasData bool
		want    int
	}{
		{"no data", 0, false, 0},
		{"logged but zero", 0, true, 1},
		{"just under 25", 24.9, true, 1},
		{"band 2 lower bound", 25, true, 2},
		{"just under 50", 49.9, true, 2},
		{"band 3 lower bound", 50, true, 3},
		{"just under 75", 74.9, true, 3},
		{"band 4 lower bound", 75, true, 4},
		{"capped max", 150, true, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			day := dailyGoalResult{OverallScore: tc.score, HasData: tc.hasData}
			if got := achievementLevel(day); got != tc.want {
				t.Errorf("achievementLevel(%.1f, hasData=%v) = %d, want %d",
					tc.score, tc.hasData, got, tc.want)
			}
		})
	}
}

/* ─── Grid geometry ──────────────────────────────────────────────────── */

// TestBuildHeatmap_Geometry verifies every week has 7 slots, week 0 starts
// on a Sunday, the last week ends on a Saturday, and the grid covers the
// requested window.
func TestBuildHeatmap_Geometry(t *testing.T) {
	// Thursday to Tuesday — both edges need padding.
	windowStart := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	grid := buildHeatmap(nil, windowStart, windowEnd)

	if len(grid.Weeks) == 0 {
		t.Fatal("expected non-empty grid")
	}
	if wd := grid.Weeks[0][0].Date.Weekday(); wd != time.Sunday {
		t.Errorf("first slot weekday = %s, want Sunday", wd)
	}
	last := grid.Weeks[len(grid.Weeks)-1][6]
	if wd := last.Date.Weekday(); wd != time.Saturday {
		t.Errorf("last slot weekday = %s, want Saturday", wd)
	}
	windowDays := daysBetween(windowStart, windowEnd)
	if len(grid.Weeks)*7 < windowDays {
		t.Errorf("grid has %d slots, cannot cover %d-day window", len(grid.Weeks)*7, windowDays)
	}

	// Dates must be consecutive across week boundaries.
	prev := grid.Weeks[0][0].Date.Time
	for w, week := range grid.Weeks {
		for s, cell := range week {
			if w == 0 && s == 0 {
				continue
			}
			if want := prev.AddDate(0, 0, 1); !cell.Date.Time.Equal(want) {
				t.Fatalf("week %d slot %d date = %v, want %v", w, s, cell.Date.Time, want)
			}
			prev = cell.Date.Time
		}
	}
}

// TestBuildHeatmap_PaddingIsEmpty verifies days outside the requested window
// but inside the boundary weeks render as level-0 placeholders even when a
// result exists for a padding date.
func TestBuildHeatmap_PaddingIsEmpty(t *testing.T) {
	// Window starts Thursday 2026-01-15; Sunday-Wednesday before are padding.
	windowStart := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC)

	grid := buildHeatmap(nil, windowStart, windowEnd)
	for slot := 0; slot < 4; slot++ { // Sun..Wed of week 0
		cell := grid.Weeks[0][slot]
		if cell.Level != 0 || cell.HasData {
			t.Errorf("padding slot %d = %+v, want empty level-0 cell", slot, cell)
		}
	}
}

// TestBuildHeatmap_PlacesScoredDays verifies day results land in the right
// slots with their bucketed levels, and absent days stay level 0.
func TestBuildHeatmap_PlacesScoredDays(t *testing.T) {
	windowStart := time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC) // a Sunday
	windowEnd := time.Date(2026, 1, 24, 0, 0, 0, 0, time.UTC)   // a Saturday

	days := []dailyGoalResult{
		// Sunday scores into band 4, Tuesday into band 2.
		{Date: DateOnly{windowStart}, OverallScore: 90, HasData: true},
		{Date: DateOnly{windowStart.AddDate(0, 0, 2)}, OverallScore: 30, HasData: true},
	}
	grid := buildHeatmap(days, windowStart, windowEnd)

	if len(grid.Weeks) != 1 {
		t.Fatalf("got %d weeks, want 1", len(grid.Weeks))
	}
	if grid.Weeks[0][0].Level != 4 {
		t.Errorf("Sunday level = %d, want 4", grid.Weeks[0][0].Level)
	}
	if grid.Weeks[0][2].Level != 2 {
		t.Errorf("Tuesday level = %d, want 2", grid.Weeks[0][2].Level)
	}
	if grid.Weeks[0][1].Level != 0 {
		t.Errorf("Monday (no result) level = %d, want 0", grid.Weeks[0][1].Level)
	}
}

/* ─── Month markers ──────────────────────────────────────────────────── */

// TestBuildHeatmap_MonthMarkers verifies a marker appears at week 0 and at
// each week whose first slot enters a new month.
func TestBuildHeatmap_MonthMarkers(t *testing.T) {
	// Grid runs Sun 2026-01-11 .. Sat 2026-03-14: week first slots are
	// Jan 11/18/25, Feb 1/8/15/22, Mar 1/8.
	windowStart := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	grid := buildHeatmap(nil, windowStart, windowEnd)

	want := []monthMarker{
		{WeekIndex: 0, Label: "Jan"},
		{WeekIndex: 3, Label: "Feb"},
		{WeekIndex: 7, Label: "Mar"},
	}
	if len(grid.Months) != len(want) {
		t.Fatalf("got %d month markers (%v), want %d", len(grid.Months), grid.Months, len(want))
	}
	for i, marker := range want {
		if grid.Months[i] != marker {
			t.Errorf("marker %d = %+v, want %+v", i, grid.Months[i], marker)
		}
	}
}
