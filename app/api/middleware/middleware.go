package middleware

import (
	"github.com/labstack/echo/v4"

	"backend/insurance-platform/app/internal/runtime"
)

type Middleware struct {
	RateLimit RateLimit
}

func NewMiddleware(res runtime.Resource) *Middleware {
	return &Middleware{
		RateLimit: NewRateLimit(res),
	}
}

func (m *Middleware) LimitRequests() echo.MiddlewareFunc {
	return m.RateLimit.LimitRequests()
}
