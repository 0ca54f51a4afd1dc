package wld

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/samber/lo"
)

// QuoteAll escapes every literal so it only matches itself in ModeRegex.
// Order is preserved and a nil slice stays nil.
func QuoteAll(literals []string) []string {
	if literals == nil {
		return nil
	}

	return lo.Map(literals, func(literal string, _ int) string {
		return regexp2.Escape(literal)
	})
}

// Alternation builds a ModeRegex pattern matching any of the literals.
func Alternation(literals []string) string {
	return strings.Join(QuoteAll(literals), "|")
}
