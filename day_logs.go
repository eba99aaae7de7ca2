package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// fetchDayLogs returns one dayLog per calendar day in [start, end], summing
// food log items per date and attaching the day's weight entry when one
// exists. Days with no logged food come back with HasData=false and zero
// totals — the engine treats them as missing evidence, not as failures.
func fetchDayLogs(pool *pgxpool.Pool, c *gin.Context, userID int, start, end time.Time) ([]dayLog, error) {
	rows, err := queryMany[dayLogDBRow](pool, c,
		`SELECT
			f.date,
			SUM(f.calories)              AS calories,
			COALESCE(SUM(f.protein_g), 0) AS protein_g,
			COALESCE(SUM(f.carbs_g),   0) AS carbs_g,
			COALESCE(SUM(f.fat_g),     0) AS fat_g,
			MAX(w.weight_lbs)            AS weight_lbs
		 FROM food_log_items f
		 LEFT JOIN weight_log w ON w.user_id = f.user_id AND w.date = f.date
		 WHERE f.user_id = @userID AND f.date >= @start AND f.date <= @end
		 GROUP BY f.date`,
		pgx.NamedArgs{
			"userID": userID,
			"start":  start.Format("2006-01-02"),
			"end":    end.Format("2006-01-02"),
		})
	if err != nil {
		return nil, err
	}

	// Index DB rows by date string for O(1) merge.
	rowByDate := make(map[string]dayLogDBRow, len(rows))
	for _, r := range rows {
		rowByDate[r.Date.Time.Format("2006-01-02")] = r
	}

	// Build the full window, filling zeros for days with no data, so the
	// slice length always equals the window's day count.
	start = midnightUTC(start)
	end = midnightUTC(end)
	days := make([]dayLog, 0, daysBetween(start, end))
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := dayLog{Date: DateOnly{d}}
		if row, ok := rowByDate[d.Format("2006-01-02")]; ok {
			day.HasData = true
			day.Calories = row.Calories
			day.ProteinG = row.ProteinG
			day.CarbsG = row.CarbsG
			day.FatG = row.FatG
			day.WeightLBS = row.WeightLBS
		}
		days = append(days, day)
	}
	return days, nil
}

// evaluateRange is the fetch-then-evaluate pipeline shared by every
// analytics endpoint: load the window's day logs and target history, then
// run the pure evaluator per day with the targets valid for that date.
func (h *Handler) evaluateRange(c *gin.Context, userID int, start, end time.Time) ([]dailyGoalResult, error) {
	days, err := fetchDayLogs(h.db, c, userID, start, end)
	if err != nil {
		return nil, err
	}
	history, err := fetchTargetHistory(h.db, c, userID)
	if err != nil {
		return nil, err
	}

	results := make([]dailyGoalResult, 0, len(days))
	for _, day := range days {
		// A day outside all target ranges evaluates against zero targets:
		// every percentage reads 0 instead of erroring.
		targets, _ := targetForDate(history, day.Date.Time)
		results = append(results, evaluateDay(day, targets))
	}
	return results, nil
}
