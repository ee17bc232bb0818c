package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"gamezone/pkg/logger"
)

// RateLimiter applies a per-IP token bucket. Auth and payment endpoints
// get tighter buckets than the rest of the API.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     int
	window   time.Duration
}

type visitor struct {
	tokens     int
	lastRefill time.Time
	lastSeen   time.Time
}

func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(c.RealIP()) {
				logger.Warn("Rate limit exceeded for %s on %s", c.RealIP(), c.Path())
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(rl.window.Seconds()),
				})
			}
			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &visitor{tokens: rl.rate - 1, lastRefill: now, lastSeen: now}
		return true
	}

	// The refill clock only moves when a full window is credited, so a
	// client retrying faster than the window still regains tokens.
	if windows := int(now.Sub(v.lastRefill) / rl.window); windows > 0 {
		v.tokens += windows * rl.rate
		if v.tokens > rl.rate {
			v.tokens = rl.rate
		}
		v.lastRefill = v.lastRefill.Add(time.Duration(windows) * rl.window)
	}
	v.lastSeen = now

	if v.tokens <= 0 {
		return false
	}
	v.tokens--
	return true
}

func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(time.Hour)

		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastSeen) > 2*time.Hour {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

var (
	// 5 auth attempts per minute per IP.
	AuthLimiter = NewRateLimiter(5, time.Minute)
	// 10 payment calls per minute per IP.
	PaymentLimiter = NewRateLimiter(10, time.Minute)
)

func AuthRateLimit() echo.MiddlewareFunc {
	return AuthLimiter.Middleware()
}

func PaymentRateLimit() echo.MiddlewareFunc {
	return PaymentLimiter.Middleware()
}
