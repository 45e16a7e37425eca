package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"sportello/i18n"
	"sportello/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds a map of IP addresses to their rate limiters.
// The map itself is mutex-guarded; counting is a single-process approximation,
// so multiple instances would each keep their own counters.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	interval time.Duration
	burst    int
}

func newRateLimiterStore(window time.Duration, max int) *rateLimiterStore {
	if max < 1 {
		max = 1
	}
	return &rateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		interval: window / time.Duration(max),
		burst:    max,
	}
}

// submissionCounters counts submissions per IP within a fixed window, the
// in-process twin of the Redis INCR + EXPIRE counter. A token bucket is the
// wrong shape here: its steady refill would admit extra submissions midway
// through a window, while the cap is on the total per window.
type submissionCounters struct {
	windows map[string]*submissionWindow
	mu      sync.Mutex
	max     int
	window  time.Duration
}

type submissionWindow struct {
	count int
	start time.Time
}

func newSubmissionCounters(max int, window time.Duration) *submissionCounters {
	if max < 1 {
		max = 1
	}
	return &submissionCounters{
		windows: make(map[string]*submissionWindow),
		max:     max,
		window:  window,
	}
}

func (s *submissionCounters) allow(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	w, ok := s.windows[ip]
	if !ok || now.Sub(w.start) >= s.window {
		s.windows[ip] = &submissionWindow{count: 1, start: now}
		return true
	}
	w.count++
	return w.count <= s.max
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(s.interval), s.burst)
		s.limiters[ip] = limiter
	}
	return limiter
}

func (s *rateLimiterStore) allow(ip string) bool {
	return s.getLimiter(ip).Allow()
}

// generalStore backs the global per-IP limit: 200 requests per minute.
var generalStore = newRateLimiterStore(time.Minute, 200)

// RateLimitMiddleware limits requests per IP address.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ip := getClientIP(c)
		if !generalStore.allow(ip) {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}

// SubmissionRateLimit limits form submissions per IP: at most max submissions
// within window, the next one is rejected with 429. When a Redis client is
// provided the counter is a shared fixed window (INCR + EXPIRE), so multiple
// instances count together; otherwise an in-process limiter table is used.
func SubmissionRateLimit(client *redis.Client, max int, window time.Duration) gin.HandlerFunc {
	var store *submissionCounters
	if client == nil {
		store = newSubmissionCounters(max, window)
	}

	return func(c *gin.Context) {
		logger := utils.GetLogger()
		ip := getClientIP(c)

		allowed := true
		if client != nil {
			allowed = redisAllow(c.Request.Context(), client, ip, max, window, logger)
		} else {
			allowed = store.allow(ip)
		}

		if !allowed {
			logger.Warn("Submission rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, utils.ErrorResponse{
				Message: i18n.Message(c, "booking.rate_limited"),
			})
			return
		}
		c.Next()
	}
}

func redisAllow(ctx context.Context, client *redis.Client, ip string, max int, window time.Duration, logger *zap.Logger) bool {
	key := "ratelimit:submit:" + ip
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		// Redis being down must not block submissions.
		logger.Error("rate limiter: redis incr failed", zap.Error(err))
		return true
	}
	if count == 1 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			logger.Error("rate limiter: redis expire failed", zap.Error(err))
		}
	}
	return count <= int64(max)
}
