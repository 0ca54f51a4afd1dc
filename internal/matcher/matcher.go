// Package matcher provides the process-wide pattern matcher.
package matcher

import (
	"context"
	"log/slog"

	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/namefilter/pkg/wld"
)

// Matcher caches compiled regex patterns and bounds regex match time
// according to the config.
type Matcher struct {
	Config *core.Config
	Logger *slog.Logger

	matcher *wld.Matcher
}

func (m *Matcher) Init(_ context.Context) error {
	matcher, err := wld.NewMatcher(
		wld.WithCacheSize(m.Config.RegexCacheSize),
		wld.WithMatchTimeout(m.Config.RegexMatchTimeout),
	)
	if err != nil {
		return err
	}

	m.matcher = matcher

	m.Logger.Debug("pattern matcher initialized",
		"cache_size", m.Config.RegexCacheSize,
		"match_timeout", m.Config.RegexMatchTimeout,
	)

	return nil
}

func (m *Matcher) PatternMatches(mode wld.Mode, subject, pattern string) (bool, error) {
	return m.matcher.PatternMatches(mode, subject, pattern)
}

func (m *Matcher) CachedPatterns() int {
	return m.matcher.CachedPatterns()
}
