// Package wld matches names against wildcard and regular expression patterns.
//
// Wildcard patterns support '*' (any sequence of runes, including empty),
// '?' (exactly one rune) and '\' which makes the next rune literal, so
// `a\*b` only matches "a*b". Matching is case sensitive and compares code
// points.
//
// The wildcard matcher backtracks over every '*' and its worst case is
// exponential in the number of stars. Patterns are expected to be short,
// human-written name filters; callers matching untrusted patterns must apply
// their own limits.
package wld

import "unicode/utf8"

const (
	star     = '*'
	question = '?'
	escape   = '\\'
)

// Match reports whether subject matches the wildcard pattern.
func Match(subject, pattern string) bool {
	// speed-up
	if pattern == "*" {
		return true
	}

	return matchAt(codePoints(subject), codePoints(pattern), 0, 0)
}

// codePoints splits s into runes. Each byte of an invalid UTF-8 sequence
// becomes its own negative value so that distinct bytes never compare equal.
func codePoints(s string) []rune {
	if utf8.ValidString(s) {
		return []rune(s)
	}

	runes := make([]rune, 0, len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = -rune(s[i])
		}

		runes = append(runes, r)
		i += size
	}

	return runes
}

// MatchPtr is Match for inputs that may be absent. A nil subject or pattern
// never matches.
func MatchPtr(subject, pattern *string) bool {
	if subject == nil || pattern == nil {
		return false
	}

	return Match(*subject, *pattern)
}

// matchAt matches s[si:] against p[pi:].
func matchAt(s, p []rune, si, pi int) bool {
	literalNext := false

	for {
		// end of subject, only trailing stars may remain
		if si >= len(s) {
			for pi < len(p) && p[pi] == star {
				pi++
			}

			return pi >= len(p)
		}

		if pi >= len(p) {
			return false
		}

		c := p[pi]

		if literalNext {
			literalNext = false
		} else {
			switch c {
			case escape:
				pi++
				literalNext = true

				continue
			case question:
				si++
				pi++

				continue
			case star:
				for pi+1 < len(p) && p[pi+1] == star {
					pi++
				}

				pi++

				// longest expansion first
				for i := len(s); i >= si; i-- {
					if matchAt(s, p, i, pi) {
						return true
					}
				}

				return false
			}
		}

		if c != s[si] {
			return false
		}

		si++
		pi++
	}
}
