package middlewares

import (
	"github.com/labstack/echo/v5"
	"github.com/zhulik/namefilter/internal/apictx"
	"github.com/zhulik/namefilter/internal/core"
)

func FilterIDValidator(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		id := c.Param("id")

		if apiCtx := apictx.FromContext(c.Request().Context()); apiCtx != nil {
			apiCtx.FilterID = id
		}

		if err := core.ValidateFilterID(id); err != nil {
			return err
		}

		return next(c)
	}
}
