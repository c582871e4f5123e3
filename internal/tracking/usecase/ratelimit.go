package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RateLimitConfig bounds per-client ingestion volume. A client that fills a
// window gets hard-blocked for BlockDuration, independent of window resets.
type RateLimitConfig struct {
	Window        time.Duration
	MaxRequests   int
	BlockDuration time.Duration
}

// DefaultRateLimitConfig matches the portal's fixed policy: 100 requests per
// minute, then a 5-minute block.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Window:        time.Minute,
		MaxRequests:   100,
		BlockDuration: 5 * time.Minute,
	}
}

// rateLimitStatus is the per-key window state. blockUntil is only meaningful
// while blocked is true.
type rateLimitStatus struct {
	count      int
	resetTime  time.Time
	blocked    bool
	blockUntil time.Time
}

// RateLimiter is an in-process sliding-window counter keyed by
// "clientIP:sessionID". State is process-local: a restart clears all windows
// and blocks. The map is guarded by a mutex so a check-then-update sequence
// from concurrent requests never observes a torn entry.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*rateLimitStatus
	cfg     RateLimitConfig

	now func() time.Time
}

// NewRateLimiter creates a limiter with the given policy.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		entries: make(map[string]*rateLimitStatus),
		cfg:     cfg,
		now:     time.Now,
	}
}

func rateLimitKey(clientIP, sessionID string) string {
	return clientIP + ":" + sessionID
}

// Check evaluates whether an event for the key may proceed. It performs the
// Active→Blocked transition and the window reset, but never increments the
// counter; Update does that after a successful ingestion.
func (rl *RateLimiter) Check(clientIP, sessionID string) (allowed bool, message string) {
	now := rl.now()
	key := rateLimitKey(clientIP, sessionID)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	status, ok := rl.entries[key]
	if !ok {
		return true, ""
	}

	// Inside a block period: reject with a remaining-wait hint. An expired
	// block falls through and is cleared on the next Update.
	if status.blocked {
		if now.Before(status.blockUntil) {
			remaining := status.blockUntil.Sub(now)
			minutes := int64(remaining / time.Minute)
			if remaining%time.Minute != 0 {
				minutes++
			}
			return false, fmt.Sprintf("please wait %d more minute(s)", minutes)
		}
		return true, ""
	}

	if now.Before(status.resetTime) {
		if status.count >= rl.cfg.MaxRequests {
			status.blocked = true
			status.blockUntil = now.Add(rl.cfg.BlockDuration)
			return false, "too many requests within one minute, temporarily blocked"
		}
		return true, ""
	}

	// Window expired: reset the counter and start a new window.
	status.count = 0
	status.resetTime = now.Add(rl.cfg.Window)
	status.blocked = false
	status.blockUntil = time.Time{}
	return true, ""
}

// Update increments the counter for the key after an accepted ingestion,
// creating the entry on first use. An expired block is cleared here.
func (rl *RateLimiter) Update(clientIP, sessionID string) {
	now := rl.now()
	key := rateLimitKey(clientIP, sessionID)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	status, ok := rl.entries[key]
	if !ok {
		status = &rateLimitStatus{resetTime: now.Add(rl.cfg.Window)}
		rl.entries[key] = status
	}

	if !status.blocked || !now.Before(status.blockUntil) {
		status.count++
		status.blocked = false
		status.blockUntil = time.Time{}
	}
}

// StartSweep launches the periodic cleanup loop removing entries whose window
// and block period have both lapsed. It stops when ctx is cancelled.
func (rl *RateLimiter) StartSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.sweep()
			}
		}
	}()
}

func (rl *RateLimiter) sweep() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, status := range rl.entries {
		if now.After(status.resetTime) && (status.blockUntil.IsZero() || now.After(status.blockUntil)) {
			delete(rl.entries, key)
		}
	}
}
