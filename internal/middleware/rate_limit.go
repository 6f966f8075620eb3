package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/deppfellow/catalog-api/internal/config"
	"github.com/deppfellow/catalog-api/internal/errs"
	"github.com/deppfellow/catalog-api/internal/server"
)

const redisRateLimitTimeout = 100 * time.Millisecond

// RateLimitMiddleware limits requests per client ip.
//
// With Redis configured the counters are shared by every instance;
// otherwise each instance keeps token buckets in memory.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns the rate limiting middleware, or a pass-through when
// rate limiting is disabled. Health endpoints are never limited.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit
	if !cfg.Enabled {
		return passThrough
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/api/healthcheck", "/status":
				return true
			}
			return false
		},
		Store: r.store(cfg),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.New(http.StatusForbidden, "Unable to identify client", nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().Str("identifier", identifier).Msg("rate limit exceeded")
			return errs.New(http.StatusTooManyRequests, "Too many requests", nil)
		},
	})
}

func (r *RateLimitMiddleware) store(cfg config.RateLimitConfig) middleware.RateLimiterStore {
	if r.server.Redis != nil {
		return NewRedisRateLimitStore(r.server.Redis, cfg.Burst, r.server.Logger)
	}

	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Rate),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})
}

// RecordRateLimitHit sends a RateLimitHit custom event to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}

// RedisRateLimitStore is a fixed one-second window counter kept in Redis:
// each client may make limit requests per window.
//
// Redis failures allow the request through; the limiter must not take the
// API down with it.
type RedisRateLimitStore struct {
	client *redis.Client
	limit  int
	logger *zerolog.Logger
	now    func() time.Time
}

func NewRedisRateLimitStore(client *redis.Client, limit int, logger *zerolog.Logger) *RedisRateLimitStore {
	return &RedisRateLimitStore{
		client: client,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

// Allow implements middleware.RateLimiterStore.
func (s *RedisRateLimitStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisRateLimitTimeout)
	defer cancel()

	key := fmt.Sprintf("ratelimit:%s:%d", identifier, s.now().Unix())

	pipe := s.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 2*time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		if s.logger != nil {
			s.logger.Warn().Err(err).Msg("rate limit store unavailable, allowing request")
		}
		return true, nil
	}

	return count.Val() <= int64(s.limit), nil
}
