package history

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttle limits routine snapshot writes to one per interval
type Throttle struct {
	limiter *rate.Limiter
	now     func() time.Time
}

// NewThrottle creates a throttle. A non-positive interval never throttles.
func NewThrottle(interval time.Duration) *Throttle {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Throttle{
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
	}
}

// SetClock replaces the time source
func (t *Throttle) SetClock(now func() time.Time) {
	t.now = now
}

// Allow reports whether a write may happen now
func (t *Throttle) Allow() bool {
	return t.limiter.AllowN(t.now(), 1)
}
