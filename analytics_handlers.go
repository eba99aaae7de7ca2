package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// parseAnalyticsWindow reads the period and optional reference date query
// params shared by the analytics endpoints and resolves them to a concrete
// window. Writes the 400 response itself on bad input.
func parseAnalyticsWindow(c *gin.Context) (period string, start, end time.Time, ok bool) {
	period = c.DefaultQuery("period", "30d")

	reference := time.Now().UTC()
	if s := c.Query("date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			apiError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return "", time.Time{}, time.Time{}, false
		}
		reference = t
	}

	start, end, err := resolvePeriod(period, reference)
	if err != nil {
		apiError(c, http.StatusBadRequest,
			"invalid period, expected one of: "+strings.Join(periodOrder, ", "))
		return "", time.Time{}, time.Time{}, false
	}
	return period, start, end, true
}

// evaluateWindowCached runs the fetch-then-evaluate pipeline through the
// TTL cache. ?refresh=1 bypasses the cached copy (the entry is still
// rewritten, so the next reader gets the fresh window).
func (h *Handler) evaluateWindowCached(c *gin.Context, userID int, period string, start, end time.Time) ([]dailyGoalResult, error) {
	refresh := c.Query("refresh") == "1"
	if !refresh {
		if results, ok := h.cache.get(userID, period, end); ok {
			return results, nil
		}
	}
	results, err := h.evaluateRange(c, userID, start, end)
	if err != nil {
		return nil, err
	}
	h.cache.put(userID, period, end, results)
	return results, nil
}

// getPeriods returns the selectable analytics periods for UI population.
// GET /api/analytics/periods.
func (h *Handler) getPeriods(c *gin.Context) {
	c.JSON(http.StatusOK, listPeriods())
}

// getDailyGoals returns one goal-achievement result per calendar day in the
// window, including HasData=false placeholders for unlogged days.
// GET /api/analytics/daily-goals?period=30d&date=YYYY-MM-DD.
func (h *Handler) getDailyGoals(c *gin.Context) {
	userID := c.GetInt("user_id")
	period, start, end, ok := parseAnalyticsWindow(c)
	if !ok {
		return
	}

	results, err := h.evaluateWindowCached(c, userID, period, start, end)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to compute daily goals")
		return
	}
	c.JSON(http.StatusOK, results)
}

// getConsistency returns consistency scores over the window — one per
// requested goal type, or all goal types when goal_type is omitted.
// GET /api/analytics/consistency?period=30d&goal_type=calories&threshold=80.
func (h *Handler) getConsistency(c *gin.Context) {
	userID := c.GetInt("user_id")
	period, start, end, ok := parseAnalyticsWindow(c)
	if !ok {
		return
	}

	goalTypes := validGoalTypes
	if g := c.Query("goal_type"); g != "" {
		if !isValidGoalType(g) {
			apiError(c, http.StatusBadRequest,
				"goal_type must be one of: "+strings.Join(validGoalTypes, ", "))
			return
		}
		goalTypes = []string{g}
	}

	threshold := defaultAchievementThreshold
	if s := c.Query("threshold"); s != "" {
		t, err := strconv.ParseFloat(s, 64)
		if err != nil || t <= 0 {
			apiError(c, http.StatusBadRequest, "threshold must be a positive number")
			return
		}
		threshold = t
	}

	results, err := h.evaluateWindowCached(c, userID, period, start, end)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to compute consistency")
		return
	}

	scores := make([]consistencyScore, 0, len(goalTypes))
	for _, goalType := range goalTypes {
		scores = append(scores, scoreConsistency(results, goalType, threshold))
	}
	c.JSON(http.StatusOK, scores)
}

// getHeatmap returns the Sunday-aligned calendar grid for the window.
// GET /api/analytics/heatmap?period=90d&date=YYYY-MM-DD.
func (h *Handler) getHeatmap(c *gin.Context) {
	userID := c.GetInt("user_id")
	period, start, end, ok := parseAnalyticsWindow(c)
	if !ok {
		return
	}

	results, err := h.evaluateWindowCached(c, userID, period, start, end)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to compute heatmap")
		return
	}
	c.JSON(http.StatusOK, buildHeatmap(results, start, end))
}

// getComparison compares the window against the immediately preceding
// window of the same length for one metric.
// GET /api/analytics/comparison?period=7d&metric=calories&date=YYYY-MM-DD.
func (h *Handler) getComparison(c *gin.Context) {
	userID := c.GetInt("user_id")
	period, start, end, ok := parseAnalyticsWindow(c)
	if !ok {
		return
	}

	metric := c.DefaultQuery("metric", "calories")
	if !isValidMetric(metric) {
		apiError(c, http.StatusBadRequest,
			"metric must be one of: "+strings.Join(validMetrics, ", "))
		return
	}

	// The previous window ends the day before the current one starts and
	// spans the same number of days, so the two comparisons line up.
	windowDays := daysBetween(start, end)
	prevEnd := start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(windowDays - 1))

	current, err := h.evaluateRange(c, userID, start, end)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to compute comparison")
		return
	}
	previous, err := h.evaluateRange(c, userID, prevStart, prevEnd)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to compute comparison")
		return
	}

	result, err := comparePeriods(current, previous, metric,
		"current "+period, "previous "+period)
	if err != nil {
		if errors.Is(err, errPeriodLengthMismatch) {
			apiError(c, http.StatusBadRequest, err.Error())
			return
		}
		apiError(c, http.StatusInternalServerError, "failed to compute comparison")
		return
	}
	c.JSON(http.StatusOK, result)
}
