package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/annazecevic/band-service/logger"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. A client may burst up to
// limit requests, then gets one more every window/limit.
type RateLimiter struct {
	limiters map[string]*clientLimiter
	mu       sync.Mutex
	limit    int
	window   time.Duration
	every    rate.Limit
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter starts a background sweep of idle clients; call Stop to end it.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    limit,
		window:   window,
		every:    rate.Every(window / time.Duration(limit)),
		now:      time.Now,
		stop:     make(chan struct{}),
	}

	go rl.cleanup(time.Minute)

	return rl
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		ok, wait := rl.allow(ip)
		if !ok {
			logger.Warn(logger.EventRateLimited, "Rate limit exceeded", logger.Fields(
				"ip", ip,
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
			))
			c.Header("Retry-After", retryAfter(wait))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"detail": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) getLimiter(ip string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, exists := rl.limiters[ip]
	if !exists {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.every, rl.limit)}
		rl.limiters[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// allow reports whether ip may proceed and, if not, how long until it may.
func (rl *RateLimiter) allow(ip string) (bool, time.Duration) {
	now := rl.now()
	limiter := rl.getLimiter(ip, now)
	if limiter.AllowN(now, 1) {
		return true, 0
	}

	r := limiter.ReserveN(now, 1)
	wait := r.DelayFrom(now)
	r.CancelAt(now)
	return false, wait
}

// sweep drops clients idle for longer than a full window; their buckets are full again anyway.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, cl := range rl.limiters {
		if now.Sub(cl.lastSeen) > rl.window {
			delete(rl.limiters, ip)
		}
	}
}

func (rl *RateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stop:
			return
		}
	}
}

func retryAfter(wait time.Duration) string {
	secs := int((wait + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
