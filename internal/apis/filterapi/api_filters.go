package filterapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/zhulik/namefilter/internal/apis/filterapi/middlewares"
	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/namefilter/pkg/codec"
	"github.com/zhulik/namefilter/pkg/filter"
)

type evaluateRequestBody struct {
	Class  string `json:"class"`
	Method string `json:"method"`
}

type evaluateResponseBody struct {
	Matched bool `json:"matched"`
}

type APIFilters struct {
	Backend core.FilterBackend
	Matcher core.PatternMatcher
	Echo    *Echo
}

func (a APIFilters) Init(_ context.Context) error {
	filters := a.Echo.Group("/filters")

	filters.GET("", a.ListFilters)
	filters.POST("", a.CreateFilter)
	filters.GET("/:id", a.GetFilter, middlewares.FilterIDValidator)
	filters.PUT("/:id", a.UpdateFilter, middlewares.FilterIDValidator)
	filters.DELETE("/:id", a.DeleteFilter, middlewares.FilterIDValidator)
	filters.POST("/:id/evaluate", a.EvaluateFilter, middlewares.FilterIDValidator)

	return nil
}

// ListFilters returns the sorted ids of all filters.
func (a APIFilters) ListFilters(c *echo.Context) error {
	ids, err := a.Backend.GetFilters(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ids)
}

func (a APIFilters) GetFilter(c *echo.Context) error {
	f, err := a.Backend.GetFilterByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, f)
}

func (a APIFilters) CreateFilter(c *echo.Context) error {
	f, err := readFilter(c)
	if err != nil {
		return err
	}

	err = a.Backend.CreateFilter(c.Request().Context(), f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, f)
}

// UpdateFilter replaces a filter. The body may omit Id; a different Id is
// rejected.
func (a APIFilters) UpdateFilter(c *echo.Context) error {
	id := c.Param("id")

	f, err := readFilter(c)
	if err != nil {
		return err
	}

	switch f.ID {
	case "":
		f.ID = id
	case id:
	default:
		return fmt.Errorf("%w: filter Id %q does not match %q", core.ErrInvalidRequest, f.ID, id)
	}

	err = a.Backend.UpdateFilter(c.Request().Context(), f)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, f)
}

func (a APIFilters) DeleteFilter(c *echo.Context) error {
	err := a.Backend.DeleteFilter(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// EvaluateFilter reports whether the filter selects the given class and method.
func (a APIFilters) EvaluateFilter(c *echo.Context) error {
	r := evaluateRequestBody{}
	if err := c.Bind(&r); err != nil {
		return err
	}

	if r.Class == "" {
		return fmt.Errorf("%w: missing class", core.ErrInvalidRequest)
	}

	f, err := a.Backend.GetFilterByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	matched, err := f.Evaluate(a.Matcher, r.Class, r.Method)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, evaluateResponseBody{Matched: matched})
}

func readFilter(c *echo.Context) (*filter.Filter, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}

	f, err := codec.Unmarshal[filter.Filter](codec.FormatJSON, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidRequest, err)
	}

	return &f, nil
}
