package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "task-manager-api.com/task-manager-api/internal/errors"
)

const (
	HeaderRateLimit     = "X-RateLimit-Limit"
	HeaderRateRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter    = "Retry-After"
)

type window struct {
	hits  int
	reset time.Time
}

// Throttle counts requests per client IP in fixed windows.
type Throttle struct {
	limit  int
	period time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string]*window
	sweep   time.Time
}

func NewThrottle(limit int, period time.Duration) *Throttle {
	return &Throttle{
		limit:   limit,
		period:  period,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

// hit records one request for key and reports how many remain in the
// current window, or how long to wait once the limit is reached.
func (t *Throttle) hit(key string) (remaining int, retryAfter time.Duration, ok bool) {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if now.After(t.sweep) {
		for k, w := range t.windows {
			if !now.Before(w.reset) {
				delete(t.windows, k)
			}
		}
		t.sweep = now.Add(t.period)
	}

	w, found := t.windows[key]
	if !found || !now.Before(w.reset) {
		w = &window{reset: now.Add(t.period)}
		t.windows[key] = w
	}

	if w.hits >= t.limit {
		return 0, w.reset.Sub(now), false
	}

	w.hits++
	return t.limit - w.hits, 0, true
}

func (t *Throttle) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			remaining, retryAfter, ok := t.hit(c.RealIP())

			h := c.Response().Header()
			h.Set(HeaderRateLimit, strconv.Itoa(t.limit))
			h.Set(HeaderRateRemaining, strconv.Itoa(remaining))

			if !ok {
				h.Set(HeaderRetryAfter, strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				return apperrors.ErrTooManyRequests
			}

			return next(c)
		}
	}
}

// RateLimiter allows limit requests per client IP in each period.
func RateLimiter(limit int, period time.Duration) echo.MiddlewareFunc {
	return NewThrottle(limit, period).Middleware()
}
