package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// tokenLifetime is how long an auth token stays valid after login.
const tokenLifetime = 30 * 24 * time.Hour

// dummyHash is a pre-computed bcrypt hash used when a login username isn't
// found. Running bcrypt against it (instead of returning early) keeps
// response time constant, preventing timing-based username enumeration.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

// login verifies username/password, rotates the user's auth token, and
// returns it with a fresh expiry.
// POST /api/login (public — no auth required).
func (h *Handler) login(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	u, lookupErr := queryOne[user](h.db, c,
		"SELECT * FROM users WHERE username = @username",
		pgx.NamedArgs{"username": body.Username})

	// Always run bcrypt to keep response time constant regardless of whether
	// the username was found.
	hashToCheck := string(dummyHash)
	if lookupErr == nil {
		hashToCheck = u.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hashToCheck), []byte(body.Password))

	if lookupErr != nil || compareErr != nil {
		apiError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	// Rotate the token on every login so a leaked old token dies with the
	// next sign-in.
	token := uuid.New().String()
	expires := time.Now().Add(tokenLifetime)
	_, err := h.db.Exec(c,
		"UPDATE users SET auth_token = $1, token_expires_at = $2 WHERE id = $3",
		token, expires, u.ID)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"user_id":    u.ID,
		"expires_at": expires,
	})
}

// authMiddleware validates the Bearer token (including its expiry) and sets
// user_id on the context.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		var userID int
		var expires *time.Time
		err := h.db.QueryRow(c,
			"SELECT id, token_expires_at FROM users WHERE auth_token = $1",
			token).Scan(&userID, &expires)
		if err != nil {
			apiError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		if expires != nil && time.Now().After(*expires) {
			apiError(c, http.StatusUnauthorized, "token expired")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
