package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// getTargetHistory returns the user's full target history, newest first.
// The active set is the one with a null effective_to.
// GET /api/targets.
func (h *Handler) getTargetHistory(c *gin.Context) {
	userID := c.GetInt("user_id")

	history, err := fetchTargetHistory(h.db, c, userID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to fetch targets")
		return
	}
	c.JSON(http.StatusOK, history)
}

// createTargetSet opens a new target set effective from the given date
// (default today) and closes the currently open set the day before, in one
// transaction so the history never overlaps. Historical analytics keep
// evaluating old days against the targets that were in effect then.
// POST /api/targets.
func (h *Handler) createTargetSet(c *gin.Context) {
	userID := c.GetInt("user_id")

	var body createTargetSetRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Calories < 0 || body.ProteinG < 0 || body.CarbsG < 0 || body.FatG < 0 {
		apiError(c, http.StatusBadRequest, "targets must not be negative")
		return
	}
	if body.EffectiveFrom == "" {
		body.EffectiveFrom = time.Now().UTC().Format("2006-01-02")
	}
	effectiveFrom, err := time.Parse("2006-01-02", body.EffectiveFrom)
	if err != nil {
		apiError(c, http.StatusBadRequest, "invalid effective_from, expected YYYY-MM-DD")
		return
	}

	tx, err := h.db.Begin(c)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update targets")
		return
	}
	defer tx.Rollback(c)

	// Close the open set the day before the new one starts. A set opened on
	// the same date would end before it starts, so delete it instead — the
	// user is correcting today's edit, not layering a new era.
	dayBefore := effectiveFrom.AddDate(0, 0, -1).Format("2006-01-02")
	if _, err := tx.Exec(c,
		`DELETE FROM nutrition_targets
		 WHERE user_id = @userID AND effective_to IS NULL AND effective_from >= @from`,
		pgx.NamedArgs{"userID": userID, "from": body.EffectiveFrom}); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update targets")
		return
	}
	if _, err := tx.Exec(c,
		`UPDATE nutrition_targets SET effective_to = @dayBefore
		 WHERE user_id = @userID AND effective_to IS NULL`,
		pgx.NamedArgs{"userID": userID, "dayBefore": dayBefore}); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update targets")
		return
	}

	rows, err := tx.Query(c,
		`INSERT INTO nutrition_targets (user_id, calories, protein_g, carbs_g, fat_g, weight_goal_lbs, effective_from)
		 VALUES (@userID, @calories, @proteinG, @carbsG, @fatG, @weightGoalLBS, @effectiveFrom)
		 RETURNING *`,
		pgx.NamedArgs{
			"userID": userID, "calories": body.Calories,
			"proteinG": body.ProteinG, "carbsG": body.CarbsG, "fatG": body.FatG,
			"weightGoalLBS": body.WeightGoalLBS, "effectiveFrom": body.EffectiveFrom,
		})
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create targets")
		return
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[targetSet])
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to create targets")
		return
	}

	if err := tx.Commit(c); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to update targets")
		return
	}

	h.cache.invalidateUser(userID)
	c.JSON(http.StatusCreated, created)
}
