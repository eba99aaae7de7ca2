package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// targetForDate selects the target set whose validity range contains the
// given date. History rows never overlap (POST /api/targets closes the
// predecessor), so the first containing range wins. A date outside every
// range returns found=false and zero targets — the evaluator then degrades
// to 0% rather than failing, and handlers can surface a warning.
func targetForDate(history []targetSet, date time.Time) (targetSet, bool) {
	day := midnightUTC(date)
	for _, t := range history {
		if day.Before(midnightUTC(t.EffectiveFrom.Time)) {
			continue
		}
		if t.EffectiveTo != nil && day.After(midnightUTC(t.EffectiveTo.Time)) {
			continue
		}
		return t, true
	}
	return targetSet{}, false
}

// fetchTargetHistory loads the user's full target history, newest first.
// The analytics pipeline carries the whole history so per-day lookup stays
// a pure in-memory operation.
func fetchTargetHistory(pool *pgxpool.Pool, c *gin.Context, userID int) ([]targetSet, error) {
	history, err := queryMany[targetSet](pool, c,
		`SELECT * FROM nutrition_targets
		 WHERE user_id = @userID
		 ORDER BY effective_from DESC`,
		pgx.NamedArgs{"userID": userID})
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []targetSet{}
	}
	return history, nil
}
