package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns into DateOnly. NULL values zero the time and return nil so that
// *DateOnly pointer fields can be set to nil by pgx's NULL handling.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON
// responses. TokenExpiresAt lets the auth middleware reject stale tokens.
type user struct {
	ID             int        `json:"id" db:"id"`
	Username       string     `json:"username" db:"username"`
	Email          string     `json:"email" db:"email"`
	AuthToken      string     `json:"-" db:"auth_token"`
	Password       string     `json:"-" db:"password"`
	TokenExpiresAt *time.Time `json:"-" db:"token_expires_at"`
	CreatedAt      *time.Time `json:"created_at" db:"created_at"`
}

// foodLogItem maps to food_log_items. Nullable macro fields use pointers
// so pgx can scan NULLs and JSON omits them naturally.
type foodLogItem struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"user_id" db:"user_id"`
	Date      DateOnly   `json:"date" db:"date"`
	ItemName  string     `json:"item_name" db:"item_name"`
	MealType  string     `json:"meal_type" db:"meal_type"`
	Calories  int        `json:"calories" db:"calories"`
	ProteinG  *float64   `json:"protein_g" db:"protein_g"`
	CarbsG    *float64   `json:"carbs_g" db:"carbs_g"`
	FatG      *float64   `json:"fat_g" db:"fat_g"`
	CreatedAt *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" db:"updated_at"`
}

// weightEntry maps to weight_log. One row per (user_id, date).
type weightEntry struct {
	ID        int      `json:"id" db:"id"`
	UserID    int      `json:"user_id" db:"user_id"`
	Date      DateOnly `json:"date" db:"date"`
	WeightLBS float64  `json:"weight_lbs" db:"weight_lbs"`
}

// targetSet maps to nutrition_targets. Targets change over time (profile
// edits open a new row and close the previous one), so each row carries a
// validity range [EffectiveFrom, EffectiveTo]; a nil EffectiveTo means the
// set is still active.
type targetSet struct {
	ID            int       `json:"id" db:"id"`
	UserID        int       `json:"user_id" db:"user_id"`
	Calories      int       `json:"calories" db:"calories"`
	ProteinG      int       `json:"protein_g" db:"protein_g"`
	CarbsG        int       `json:"carbs_g" db:"carbs_g"`
	FatG          int       `json:"fat_g" db:"fat_g"`
	WeightGoalLBS *float64  `json:"weight_goal_lbs" db:"weight_goal_lbs"`
	EffectiveFrom DateOnly  `json:"effective_from" db:"effective_from"`
	EffectiveTo   *DateOnly `json:"effective_to" db:"effective_to"`
}

/* ─── Analytics input ────────────────────────────────────────────────── */

// dayLogDBRow is the shape of each row returned by the per-day GROUP BY
// rollup query. Used only for scanning; rows are then gap-filled into one
// dayLog per calendar day.
type dayLogDBRow struct {
	Date      DateOnly `db:"date"`
	Calories  int      `db:"calories"`
	ProteinG  float64  `db:"protein_g"`
	CarbsG    float64  `db:"carbs_g"`
	FatG      float64  `db:"fat_g"`
	WeightLBS *float64 `db:"weight_lbs"`
}

// dayLog is one calendar day's summed intake — the raw input to the
// analytics engine. Days with no logged items have HasData=false and zero
// totals; a weight entry alone does not count as intake data.
type dayLog struct {
	Date      DateOnly `json:"date"`
	Calories  int      `json:"calories"`
	ProteinG  float64  `json:"protein_g"`
	CarbsG    float64  `json:"carbs_g"`
	FatG      float64  `json:"fat_g"`
	WeightLBS *float64 `json:"weight_lbs"`
	HasData   bool     `json:"has_data"`
}

/* ─── Analytics output ───────────────────────────────────────────────── */

// metricResult is one metric's actual vs target for a single day.
// Percentage is uncapped so the UI can show e.g. 180% overconsumption;
// capping applies only when blending into the overall score.
type metricResult struct {
	Actual     float64 `json:"actual"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
}

// dailyGoalResult is one day's goal achievement across the tracked metrics.
// OverallScore is the mean of the four percentages, each capped at 150, so
// it always lands in [0, 150]. Days without data score 0 and carry
// HasData=false so aggregations can exclude them from denominators.
type dailyGoalResult struct {
	Date         DateOnly     `json:"date"`
	Calories     metricResult `json:"calories"`
	Protein      metricResult `json:"protein"`
	Carbs        metricResult `json:"carbs"`
	Fat          metricResult `json:"fat"`
	WeightLBS    *float64     `json:"weight_lbs,omitempty"`
	OverallScore float64      `json:"overall_score"`
	HasData      bool         `json:"has_data"`
}

// consistencyScore summarizes how consistently one goal type was met over
// a window. TotalDays counts only days with data; Score is the 0-100 share
// of those days at or above the achievement threshold.
type consistencyScore struct {
	GoalType          string  `json:"goal_type"`
	Score             float64 `json:"score"`
	AchievedDays      int     `json:"achieved_days"`
	TotalDays         int     `json:"total_days"`
	AveragePercentage float64 `json:"average_percentage"`
	Trend             string  `json:"trend"`
}

// heatmapCell is one day in the calendar grid. Level 0 means no data
// (including padding days outside the requested window); levels 1-4
// bucket the overall score.
type heatmapCell struct {
	Date    DateOnly `json:"date"`
	Level   int      `json:"level"`
	HasData bool     `json:"has_data"`
}

// monthMarker records the week index at which a calendar month first
// appears, for month labels along the grid.
type monthMarker struct {
	WeekIndex int    `json:"week_index"`
	Label     string `json:"label"`
}

// heatmapGrid is a GitHub-style contribution grid: full Sunday-to-Saturday
// weeks covering the requested window, plus month label positions.
type heatmapGrid struct {
	Weeks  [][7]heatmapCell `json:"weeks"`
	Months []monthMarker    `json:"months"`
}

// comparisonResult is a period-over-period aggregate for one metric.
// PercentChange is nil when the previous period's total is 0 — the change
// is undefined, not infinite.
type comparisonResult struct {
	CurrentPeriod  string   `json:"current_period"`
	PreviousPeriod string   `json:"previous_period"`
	Metric         string   `json:"metric"`
	CurrentValue   float64  `json:"current_value"`
	PreviousValue  float64  `json:"previous_value"`
	Delta          float64  `json:"delta"`
	PercentChange  *float64 `json:"percent_change"`
}

// periodOption is one selectable time period for UI population.
type periodOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

/* ─── Request types ──────────────────────────────────────────────────── */

// createFoodLogItemRequest is the request body for POST /api/food-log/items.
type createFoodLogItemRequest struct {
	Date     string   `json:"date"`
	ItemName string   `json:"item_name"`
	MealType string   `json:"meal_type"`
	Calories int      `json:"calories"`
	ProteinG *float64 `json:"protein_g"`
	CarbsG   *float64 `json:"carbs_g"`
	FatG     *float64 `json:"fat_g"`
}

// createTargetSetRequest is the request body for POST /api/targets.
// EffectiveFrom defaults to today; the previous open-ended set is closed
// the day before.
type createTargetSetRequest struct {
	Calories      int      `json:"calories"`
	ProteinG      int      `json:"protein_g"`
	CarbsG        int      `json:"carbs_g"`
	FatG          int      `json:"fat_g"`
	WeightGoalLBS *float64 `json:"weight_goal_lbs"`
	EffectiveFrom string   `json:"effective_from"`
}
