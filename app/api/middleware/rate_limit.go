package middleware

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/spartan-truongvi/redis_rate/v10"
	"go.uber.org/zap"

	"backend/insurance-platform/app/api/client/exception"
	"backend/insurance-platform/app/internal/runtime"
	redisutil "backend/insurance-platform/app/pkg/redis"
)

const defaultRequestsPerMinute = 120

type RateLimit interface {
	LimitRequests() echo.MiddlewareFunc
}

type DefaultRateLimit struct {
	res     runtime.Resource
	limiter redisutil.RateLimiter
}

func NewRateLimit(res runtime.Resource) RateLimit {
	return &DefaultRateLimit{
		res:     res,
		limiter: redisutil.NewRedisRateLimiter(res.Redis),
	}
}

// LimitRequests applies a sliding-window per-client-IP limit. When the
// limiter backend is unreachable the request is let through; throttling
// is protection, not a dependency.
func (m *DefaultRateLimit) LimitRequests() echo.MiddlewareFunc {
	perMinute := m.res.Config.RouterConfig.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = defaultRequestsPerMinute
	}
	limit := redis_rate.PerMinute(perMinute)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			key := fmt.Sprintf("rate_limit:%s", ec.RealIP())
			result, err := m.limiter.Allow(ec.Request().Context(), key, limit)
			if err != nil {
				m.res.Logger.Warn("Rate limiter unavailable", zap.Error(err))
				return next(ec)
			}
			if result.Allowed == 0 {
				ec.Response().Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())))
				return exception.NewTooManyRequestsError(
					exception.ErrRateLimitExceeded,
					int(exception.ErrorCodeRateLimitExceeded),
					"Too many requests",
				)
			}
			return next(ec)
		}
	}
}
