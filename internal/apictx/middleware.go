package apictx

import (
	"github.com/labstack/echo/v5"
	"github.com/zhulik/namefilter/internal/core"
)

// Middleware is an Echo middleware that injects ApiCtx into the request context
// and echoes the request id back to the caller.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			ctx := Inject(c)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(core.RequestIDHeader, MustFromContext(ctx).RequestID)

			return next(c)
		}
	}
}
