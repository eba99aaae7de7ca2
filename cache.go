package main

import (
	"fmt"
	"sync"
	"time"
)

// analyticsCache memoizes evaluated day-result windows by (user, period,
// reference date) with a TTL. Correctness is eventually consistent, not
// transactional: log and target writes drop the user's entries, and
// callers can bypass with ?refresh=1, but a concurrent writer on another
// instance may leave an entry stale until it expires.
type analyticsCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	userID  int
	results []dailyGoalResult
	expires time.Time
}

const defaultCacheTTL = time.Minute

func newAnalyticsCache(ttl time.Duration) *analyticsCache {
	return &analyticsCache{ttl: ttl, entries: make(map[string]cacheEntry)}
}

func cacheKey(userID int, period string, reference time.Time) string {
	return fmt.Sprintf("%d|%s|%s", userID, period, reference.Format("2006-01-02"))
}

// get returns the cached window for the key if present and unexpired.
func (ac *analyticsCache) get(userID int, period string, reference time.Time) ([]dailyGoalResult, bool) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	entry, ok := ac.entries[cacheKey(userID, period, reference)]
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.results, true
}

func (ac *analyticsCache) put(userID int, period string, reference time.Time, results []dailyGoalResult) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	ac.entries[cacheKey(userID, period, reference)] = cacheEntry{
		userID:  userID,
		results: results,
		expires: time.Now().Add(ac.ttl),
	}
}

// invalidateUser drops every entry for one user. Called on any write that
// can change the user's day logs or targets.
func (ac *analyticsCache) invalidateUser(userID int) {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	for key, entry := range ac.entries {
		if entry.userID == userID {
			delete(ac.entries, key)
		}
	}
}
