package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/towjek/internal/pkg/constants"
	"github.com/piresc/towjek/internal/pkg/logger"
	"github.com/piresc/towjek/internal/utils"
)

// WindowCounter counts hits in a fixed time window
type WindowCounter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Counter  WindowCounter
	Resource string        // Resource name used in the Redis key
	Limit    int           // Maximum number of requests
	Period   time.Duration // Time period for the limit
}

// RateLimiterMiddleware limits requests per authenticated actor, falling back to client IP
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Limit <= 0 {
				return next(c)
			}

			identifier := c.RealIP()
			if actor, ok := ActorFromContext(c); ok {
				identifier = actor.ID.String()
			}
			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, identifier)

			count, ttl, err := config.Counter.IncrWindow(c.Request().Context(), key, config.Period)
			if err != nil {
				logger.Error("Rate limiter error",
					logger.String("key", key),
					logger.Err(err))
				return utils.InternalServerErrorResponse(c, "Rate limiter error")
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

			if int(count) > config.Limit {
				h.Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			}

			return next(c)
		}
	}
}

// ProposalRateLimiter limits how often one provider may submit proposals
func ProposalRateLimiter(counter WindowCounter, limit int, period time.Duration) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		Counter:  counter,
		Resource: constants.ResourceProposalSubmit,
		Limit:    limit,
		Period:   period,
	})
}
