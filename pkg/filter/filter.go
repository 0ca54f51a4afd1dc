// Package filter selects class and method names with include/exclude rules.
package filter

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/zhulik/namefilter/pkg/codec"
	"github.com/zhulik/namefilter/pkg/wld"
)

var (
	ErrInvalidFilter = errors.New("invalid filter")
)

type Effect string

const (
	EffectInclude Effect = "Include"
	EffectExclude Effect = "Exclude"
)

// ModeLiteral matches names exactly, metacharacters included.
const ModeLiteral wld.Mode = "literal"

var (
	effects = []Effect{ //nolint:gochecknoglobals
		EffectInclude,
		EffectExclude,
	}

	modes = []wld.Mode{ //nolint:gochecknoglobals
		wld.ModeWildcard,
		wld.ModeRegex,
		ModeLiteral,
	}
)

type Filter struct {
	ID   string `json:"Id"   yaml:"id"`
	Rule []Rule `json:"Rule" yaml:"rule"`
}

// Rule matches when any Class pattern matches the class name and, if Method
// is set, any Method pattern matches the method name.
type Rule struct {
	Effect Effect   `json:"Effect"           yaml:"effect"`
	Mode   wld.Mode `json:"Mode,omitempty"   yaml:"mode,omitempty"`
	Class  []string `json:"Class"            yaml:"class"`
	Method []string `json:"Method,omitempty" yaml:"method,omitempty"`
}

// Matcher is satisfied by *wld.Matcher.
type Matcher interface {
	PatternMatches(mode wld.Mode, subject, pattern string) (bool, error)
}

type MatcherFunc func(mode wld.Mode, subject, pattern string) (bool, error)

func (f MatcherFunc) PatternMatches(mode wld.Mode, subject, pattern string) (bool, error) {
	return f(mode, subject, pattern)
}

// Parse decodes a JSON filter and validates it.
func Parse(filterBytes []byte) (*Filter, error) {
	filter, err := codec.Unmarshal[Filter](codec.FormatJSON, filterBytes)
	if err != nil {
		return nil, err
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	return &filter, nil
}

// Validate checks the filter and fills in the default Mode of its rules.
func (f *Filter) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("%w: missing Id", ErrInvalidFilter)
	}

	if len(f.Rule) == 0 {
		return fmt.Errorf("%w: missing Rule", ErrInvalidFilter)
	}

	for i := range f.Rule {
		rule := &f.Rule[i]

		if !lo.Contains(effects, rule.Effect) {
			return fmt.Errorf("%w: invalid Effect in Rule %d", ErrInvalidFilter, i)
		}

		if rule.Mode == "" {
			rule.Mode = wld.ModeWildcard
		}

		if !lo.Contains(modes, rule.Mode) {
			return fmt.Errorf("%w: invalid Mode in Rule %d, Mode %s", ErrInvalidFilter, i, rule.Mode)
		}

		if len(rule.Class) == 0 {
			return fmt.Errorf("%w: missing Class in Rule %d", ErrInvalidFilter, i)
		}

		mode, patterns := rule.compile(rule.Class)
		for _, pattern := range patterns {
			if err := wld.ValidatePattern(mode, pattern); err != nil {
				return fmt.Errorf("%w: invalid Class in Rule %d: %w", ErrInvalidFilter, i, err)
			}
		}

		mode, patterns = rule.compile(rule.Method)
		for _, pattern := range patterns {
			if err := wld.ValidatePattern(mode, pattern); err != nil {
				return fmt.Errorf("%w: invalid Method in Rule %d: %w", ErrInvalidFilter, i, err)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the filter.
func (f *Filter) Clone() *Filter {
	rules := make([]Rule, len(f.Rule))
	for i, rule := range f.Rule {
		rule.Class = slices.Clone(rule.Class)
		rule.Method = slices.Clone(rule.Method)
		rules[i] = rule
	}

	if f.Rule == nil {
		rules = nil
	}

	return &Filter{ID: f.ID, Rule: rules}
}

// Evaluate reports whether the filter selects the method of the class.
// A matching Exclude rule wins over any Include rule, and names matched by no
// rule are not selected.
func (f *Filter) Evaluate(m Matcher, className, methodName string) (bool, error) {
	for _, effect := range []Effect{EffectExclude, EffectInclude} {
		for _, rule := range f.Rule {
			if rule.Effect != effect {
				continue
			}

			ok, err := rule.Matches(m, className, methodName)
			if err != nil {
				return false, err
			}

			if ok {
				return effect == EffectInclude, nil
			}
		}
	}

	return false, nil
}

func (r Rule) Matches(m Matcher, className, methodName string) (bool, error) {
	ok, err := r.anyMatches(m, r.Class, className)
	if err != nil || !ok {
		return false, err
	}

	if len(r.Method) == 0 {
		return true, nil
	}

	return r.anyMatches(m, r.Method, methodName)
}

func (r Rule) anyMatches(m Matcher, patterns []string, name string) (bool, error) {
	mode, compiled := r.compile(patterns)

	for _, pattern := range compiled {
		ok, err := m.PatternMatches(mode, name, pattern)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

// compile maps the rule's patterns to a mode wld understands.
func (r Rule) compile(patterns []string) (wld.Mode, []string) {
	switch r.Mode {
	case "":
		return wld.ModeWildcard, patterns
	case ModeLiteral:
		if len(patterns) == 0 {
			return wld.ModeRegex, nil
		}

		return wld.ModeRegex, []string{wld.Alternation(patterns)}
	default:
		return r.Mode, patterns
	}
}
