package server

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/conneroisu/webref/internal/errors"
	"github.com/conneroisu/webref/internal/logging"
)

// RateLimitConfig configures the token bucket limiter.
type RateLimitConfig struct {
	RequestsPerMinute int
	BurstSize         int
	Enabled           bool
}

// RateLimiter implements token bucket rate limiting
type RateLimiter struct {
	buckets     map[string]*TokenBucket
	bucketMutex sync.RWMutex
	config      *RateLimitConfig
	logger      logging.Logger
	cleaner     *time.Ticker
	stopCleaner chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

// TokenBucket represents a token bucket for rate limiting
type TokenBucket struct {
	tokens     int
	capacity   int
	refillRate int // tokens per minute
	lastRefill time.Time
	mutex      sync.Mutex
	lastAccess time.Time
}

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
	ResetTime  time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(config *RateLimitConfig, logger logging.Logger) *RateLimiter {
	if config == nil {
		config = &RateLimitConfig{
			RequestsPerMinute: 600,
			BurstSize:         60,
			Enabled:           true,
		}
	}
	if logger == nil {
		logger = logging.Discard()
	}

	rl := &RateLimiter{
		buckets:     make(map[string]*TokenBucket),
		config:      config,
		logger:      logger,
		stopCleaner: make(chan struct{}),
		now:         time.Now,
	}

	// Start cleanup goroutine to remove expired buckets
	rl.cleaner = time.NewTicker(5 * time.Minute)
	go rl.cleanupExpiredBuckets()

	return rl
}

// Check checks if a request is allowed for the given key (usually IP address)
func (rl *RateLimiter) Check(key string) RateLimitResult {
	if !rl.config.Enabled {
		return RateLimitResult{
			Allowed:   true,
			Remaining: rl.config.BurstSize,
		}
	}

	bucket := rl.getBucket(key)
	return bucket.consume(rl.now())
}

// getBucket gets or creates a token bucket for the given key
func (rl *RateLimiter) getBucket(key string) *TokenBucket {
	now := rl.now()

	rl.bucketMutex.RLock()
	bucket, exists := rl.buckets[key]
	rl.bucketMutex.RUnlock()

	if exists {
		bucket.mutex.Lock()
		bucket.lastAccess = now
		bucket.mutex.Unlock()
		return bucket
	}

	rl.bucketMutex.Lock()
	defer rl.bucketMutex.Unlock()

	// Double-check after acquiring write lock
	if bucket, exists := rl.buckets[key]; exists {
		return bucket
	}

	bucket = &TokenBucket{
		tokens:     rl.config.BurstSize,
		capacity:   rl.config.BurstSize,
		refillRate: rl.config.RequestsPerMinute,
		lastRefill: now,
		lastAccess: now,
	}

	rl.buckets[key] = bucket
	return bucket
}

// consume attempts to consume a token from the bucket
func (tb *TokenBucket) consume(now time.Time) RateLimitResult {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	tb.refill(now)

	if tb.tokens > 0 {
		tb.tokens--
		return RateLimitResult{
			Allowed:   true,
			Remaining: tb.tokens,
			ResetTime: now.Add(time.Minute),
		}
	}

	retryAfter := time.Minute / time.Duration(tb.refillRate)
	return RateLimitResult{
		Allowed:    false,
		Remaining:  0,
		RetryAfter: retryAfter,
		ResetTime:  now.Add(retryAfter),
	}
}

// refill adds tokens to the bucket based on elapsed time
func (tb *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastRefill)
	if elapsed < time.Second {
		return
	}

	tokensToAdd := int(elapsed.Minutes() * float64(tb.refillRate))
	if tokensToAdd > 0 {
		tb.tokens += tokensToAdd
		if tb.tokens > tb.capacity {
			tb.tokens = tb.capacity
		}
		tb.lastRefill = now
	}
}

// cleanupExpiredBuckets removes buckets that haven't been accessed recently
func (rl *RateLimiter) cleanupExpiredBuckets() {
	for {
		select {
		case <-rl.cleaner.C:
			rl.performCleanup()
		case <-rl.stopCleaner:
			rl.cleaner.Stop()
			return
		}
	}
}

// performCleanup removes buckets not accessed for 10 minutes
func (rl *RateLimiter) performCleanup() {
	rl.bucketMutex.Lock()
	defer rl.bucketMutex.Unlock()

	now := rl.now()
	for key, bucket := range rl.buckets {
		bucket.mutex.Lock()
		expired := now.Sub(bucket.lastAccess) > 10*time.Minute
		bucket.mutex.Unlock()
		if expired {
			delete(rl.buckets, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCleaner) })
}

// Stats returns rate limiter statistics
func (rl *RateLimiter) Stats() map[string]interface{} {
	rl.bucketMutex.RLock()
	defer rl.bucketMutex.RUnlock()

	return map[string]interface{}{
		"enabled":          rl.config.Enabled,
		"requests_per_min": rl.config.RequestsPerMinute,
		"burst_size":       rl.config.BurstSize,
		"active_buckets":   len(rl.buckets),
	}
}

// RateLimitMiddleware limits requests whose path starts with prefix.
func RateLimitMiddleware(limiter *RateLimiter, prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			result := limiter.Check(ip)

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.config.RequestsPerMinute))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime.Unix()))

			if !result.Allowed {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfterSeconds(result.RetryAfter)))

				err := errors.NewSecurityError(errors.ErrCodeRateLimited, "rate limit exceeded").
					WithContext("client_ip", ip)
				logging.FromContext(r.Context(), limiter.logger).Warn(r.Context(), err, "Rate limit exceeded",
					"client_ip", ip,
					"path", logging.SanitizeForLog(r.URL.Path))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded","code":"ERR_RATE_LIMITED","type":"security"}` + "\n"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP is the remote address without its port. Forwarding headers are not
// trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// retryAfterSeconds rounds d up to whole seconds. Retry-After is never below 1.
func retryAfterSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
