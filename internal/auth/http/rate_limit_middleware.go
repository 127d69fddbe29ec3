package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	authDomain "github.com/lifebook/lifebook/internal/auth/domain"
	"github.com/lifebook/lifebook/internal/httputil"
)

// limiterStore holds per-key rate limiters with periodic cleanup of stale
// entries. Keys are user IDs for authenticated traffic and client IPs for
// the login endpoint.
type limiterStore[K comparable] struct {
	limiters sync.Map // map[K]*limiterEntry
	rps      float64
	burst    int
}

// limiterEntry holds a rate limiter and last access time for cleanup.
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

func newLimiterStore[K comparable](ctx context.Context, rps float64, burst int) *limiterStore[K] {
	store := &limiterStore[K]{
		rps:   rps,
		burst: burst,
	}

	// Cleanup goroutine for stale limiters, stops with the server context
	go store.cleanupStale(ctx, 5*time.Minute)

	return store
}

// getLimiter retrieves or creates a rate limiter for a key.
func (s *limiterStore[K]) getLimiter(key K) *rate.Limiter {
	if val, ok := s.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.mu.Lock()
		entry.lastAccess = time.Now()
		entry.mu.Unlock()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rate.Limit(s.rps), s.burst)
	s.limiters.Store(key, &limiterEntry{
		limiter:    limiter,
		lastAccess: time.Now(),
	})
	return limiter
}

// cleanupStale removes rate limiters that haven't been accessed in the last
// hour. Runs periodically to prevent unbounded memory growth.
func (s *limiterStore[K]) cleanupStale(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			threshold := time.Now().Add(-1 * time.Hour)
			s.limiters.Range(func(key, value any) bool {
				entry := value.(*limiterEntry)
				entry.mu.Lock()
				shouldDelete := entry.lastAccess.Before(threshold)
				entry.mu.Unlock()

				if shouldDelete {
					s.limiters.Delete(key)
				}
				return true
			})
		}
	}
}

// rejectRateLimited writes a 429 response with a Retry-After header.
func rejectRateLimited(c *gin.Context, limiter *rate.Limiter, logger *slog.Logger, attrs ...slog.Attr) {
	reservation := limiter.Reserve()
	retryAfter := int(reservation.Delay().Seconds())
	reservation.Cancel()

	logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "rate limit exceeded",
		append(attrs, slog.Int("retry_after", retryAfter))...)

	c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
	c.JSON(http.StatusTooManyRequests, httputil.ErrorResponse{
		Message: "too many requests",
		Details: "retry after the delay in the Retry-After header",
	})
	c.Abort()
}

// RateLimitMiddleware enforces per-user rate limiting on authenticated
// requests using a token bucket per user ID.
//
// MUST be used after RequireLogin. Requests over the limit get
// 429 Too Many Requests with a Retry-After header.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore[string](ctx, rps, burst)

	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			// Should never happen, RequireLogin runs first
			logger.Error("rate limit middleware: no authenticated principal in context")
			httputil.HandleErrorGin(c, authDomain.ErrMissingToken, logger)
			c.Abort()
			return
		}

		limiter := store.getLimiter(principal.UserID.String())
		if !limiter.Allow() {
			rejectRateLimited(c, limiter, logger, slog.String("user_id", principal.UserID.String()))
			return
		}

		c.Next()
	}
}

// LoginRateLimitMiddleware enforces per-IP rate limiting on the
// unauthenticated auth endpoints to slow down credential stuffing.
//
// Uses c.ClientIP(), which handles X-Forwarded-For and X-Real-IP.
func LoginRateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := newLimiterStore[string](ctx, rps, burst)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		limiter := store.getLimiter(clientIP)
		if !limiter.Allow() {
			rejectRateLimited(c, limiter, logger, slog.String("client_ip", clientIP))
			return
		}

		c.Next()
	}
}
