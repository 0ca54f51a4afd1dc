package wld

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrMatchTimeout   = errors.New("pattern match timed out")
)

// InvalidPatternError is returned when a regex pattern does not compile.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidPattern, e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

// Mode selects the pattern syntax.
type Mode string

const (
	ModeWildcard Mode = "wildcard"
	ModeRegex    Mode = "regex"
)

var (
	Modes = []Mode{ //nolint:gochecknoglobals
		ModeWildcard,
		ModeRegex,
	}
)

// ParseMode converts a textual mode, case insensitively.
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeWildcard:
		return ModeWildcard, true
	case ModeRegex:
		return ModeRegex, true
	default:
		return "", false
	}
}

// PatternMatches matches subject against pattern using the syntax selected by mode.
// Regex patterns must match the whole subject. An unknown mode never matches
// and is not an error.
func PatternMatches(mode Mode, subject, pattern string) (bool, error) {
	switch mode {
	case ModeWildcard:
		return Match(subject, pattern), nil
	case ModeRegex:
		re, err := compileRegex(pattern)
		if err != nil {
			return false, err
		}

		return matchRegex(re, subject)
	default:
		return false, nil
	}
}

// ValidatePattern reports whether pattern can be used with mode. Wildcard
// patterns are always valid.
func ValidatePattern(mode Mode, pattern string) error {
	if mode != ModeRegex {
		return nil
	}

	_, err := compileRegex(pattern)

	return err
}

func compileRegex(pattern string) (*regexp2.Regexp, error) {
	// the bare pattern is compiled first so that unbalanced groups such as
	// "a)|(b" cannot escape the anchoring wrapper below
	if _, err := regexp2.Compile(pattern, regexp2.None); err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}

	re, err := regexp2.Compile(`\A(?:`+pattern+`)\z`, regexp2.None)
	if err == nil {
		return re, nil
	}

	// a valid pattern only breaks the wrapper when it ends in an (?x) comment,
	// which runs to the end of the line; in that mode the newline is ignored
	re, retryErr := regexp2.Compile(`\A(?:`+pattern+"\n"+`)\z`, regexp2.None)
	if retryErr != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}

	return re, nil
}

func compileRegexWithTimeout(pattern string, timeout time.Duration) (*regexp2.Regexp, error) {
	re, err := compileRegex(pattern)
	if err != nil {
		return nil, err
	}

	if timeout > 0 {
		re.MatchTimeout = timeout
	}

	return re, nil
}

func matchRegex(re *regexp2.Regexp, subject string) (bool, error) {
	ok, err := re.MatchString(subject)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMatchTimeout, err)
	}

	return ok, nil
}
