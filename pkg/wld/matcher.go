package wld

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 256

type Option func(*Matcher)

// WithCacheSize sets how many compiled regex patterns are kept.
func WithCacheSize(size int) Option {
	return func(m *Matcher) {
		m.cacheSize = size
	}
}

// WithMatchTimeout bounds a single regex match. Zero disables the limit.
func WithMatchTimeout(timeout time.Duration) Option {
	return func(m *Matcher) {
		m.timeout = timeout
	}
}

// Matcher dispatches like PatternMatches but keeps compiled regex patterns in
// an LRU cache. It is safe for concurrent use.
type Matcher struct {
	cacheSize int
	timeout   time.Duration

	regexes *lru.Cache[string, *regexp2.Regexp]
}

func NewMatcher(opts ...Option) (*Matcher, error) {
	m := &Matcher{
		cacheSize: DefaultCacheSize,
	}

	for _, opt := range opts {
		opt(m)
	}

	cache, err := lru.New[string, *regexp2.Regexp](m.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create regex cache: %w", err)
	}

	m.regexes = cache

	return m, nil
}

func (m *Matcher) PatternMatches(mode Mode, subject, pattern string) (bool, error) {
	switch mode {
	case ModeWildcard:
		return Match(subject, pattern), nil
	case ModeRegex:
		re, err := m.regex(pattern)
		if err != nil {
			return false, err
		}

		return matchRegex(re, subject)
	default:
		return false, nil
	}
}

// CachedPatterns returns the number of compiled regex patterns held.
func (m *Matcher) CachedPatterns() int {
	return m.regexes.Len()
}

func (m *Matcher) regex(pattern string) (*regexp2.Regexp, error) {
	if re, ok := m.regexes.Get(pattern); ok {
		return re, nil
	}

	re, err := compileRegexWithTimeout(pattern, m.timeout)
	if err != nil {
		return nil, err
	}

	m.regexes.Add(pattern, re)

	return re, nil
}
