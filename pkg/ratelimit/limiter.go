package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config holds the session-creation rate limit policy. Thresholds are
// configuration, not a load-bearing contract; they may be tuned or the
// guard disabled per deployment.
type Config struct {
	Enabled       bool
	PerIPPerHour  int
	GlobalPerHour int
}

// DefaultConfig mirrors the historical policy: 10 sessions per hour per
// client, 100 per hour globally.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		PerIPPerHour:  10,
		GlobalPerHour: 100,
	}
}

// Guard applies a global and a per-IP token bucket to session creation.
// Buckets refill continuously at the hourly rate with burst equal to the
// hourly cap.
type Guard struct {
	mu     sync.Mutex
	cfg    Config
	global *rate.Limiter
	perIP  map[string]*rate.Limiter
}

func NewGuard(cfg Config) *Guard {
	return &Guard{
		cfg:    cfg,
		global: hourlyLimiter(cfg.GlobalPerHour),
		perIP:  make(map[string]*rate.Limiter),
	}
}

func hourlyLimiter(perHour int) *rate.Limiter {
	if perHour <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Hour/time.Duration(perHour)), perHour)
}

// Allow consumes one token for the given client IP. When the guard is
// disabled it always permits.
func (g *Guard) Allow(ip string) bool {
	if !g.cfg.Enabled {
		return true
	}

	g.mu.Lock()
	limiter, ok := g.perIP[ip]
	if !ok {
		limiter = hourlyLimiter(g.cfg.PerIPPerHour)
		g.perIP[ip] = limiter
	}
	g.mu.Unlock()

	if !limiter.Allow() {
		return false
	}
	return g.global.Allow()
}
