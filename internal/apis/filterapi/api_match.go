package filterapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v5"
	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/namefilter/pkg/wld"
)

type matchRequestBody struct {
	Mode    string  `json:"mode"`
	Subject *string `json:"subject"`
	Pattern *string `json:"pattern"`
}

type matchResponseBody struct {
	Matched bool `json:"matched"`
}

type quoteRequestBody struct {
	Patterns []string `json:"patterns"`
}

type quoteResponseBody struct {
	Patterns    []string `json:"patterns"`
	Alternation string   `json:"alternation"`
}

type APIMatch struct {
	Matcher core.PatternMatcher
	Echo    *Echo
}

func (a APIMatch) Init(_ context.Context) error {
	a.Echo.POST("/match", a.Match)
	a.Echo.POST("/quote", a.Quote)

	return nil
}

// Match matches a subject against a pattern. Absent inputs and unknown modes
// do not match. An empty mode means wildcard.
func (a APIMatch) Match(c *echo.Context) error {
	r := matchRequestBody{}
	if err := c.Bind(&r); err != nil {
		return err
	}

	mode := wld.ModeWildcard
	if r.Mode != "" {
		parsed, ok := wld.ParseMode(r.Mode)
		if !ok {
			return c.JSON(http.StatusOK, matchResponseBody{})
		}

		mode = parsed
	}

	if r.Subject == nil || r.Pattern == nil {
		return c.JSON(http.StatusOK, matchResponseBody{})
	}

	matched, err := a.Matcher.PatternMatches(mode, *r.Subject, *r.Pattern)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, matchResponseBody{Matched: matched})
}

// Quote escapes literals for regex mode.
func (a APIMatch) Quote(c *echo.Context) error {
	r := quoteRequestBody{}
	if err := c.Bind(&r); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, quoteResponseBody{
		Patterns:    wld.QuoteAll(r.Patterns),
		Alternation: wld.Alternation(r.Patterns),
	})
}
