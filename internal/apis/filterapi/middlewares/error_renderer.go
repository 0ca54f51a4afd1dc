package middlewares

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/namefilter/pkg/filter"
	"github.com/zhulik/namefilter/pkg/wld"
)

func ErrorRenderer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			err := next(c)

			switch {
			case err == nil:
				return nil
			case errors.Is(err, echo.ErrStatusRequestEntityTooLarge):
				// body limit errors may arrive wrapped by a failed Bind
				return echo.ErrStatusRequestEntityTooLarge
			case errors.Is(err, core.ErrFilterNotFound):
				return echo.NewHTTPError(http.StatusNotFound, err.Error())
			case errors.Is(err, core.ErrFilterAlreadyExists):
				return echo.NewHTTPError(http.StatusConflict, err.Error())
			case errors.Is(err, core.ErrInvalidRequest) ||
				errors.Is(err, core.ErrInvalidFilterID) ||
				errors.Is(err, filter.ErrInvalidFilter) ||
				errors.Is(err, wld.ErrInvalidPattern):
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			case errors.Is(err, wld.ErrMatchTimeout):
				return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
			default:
				return err
			}
		}
	}
}
