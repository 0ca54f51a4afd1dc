package matcher_test

import (
	"context"
	"log/slog"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/namefilter/internal/matcher"
	"github.com/zhulik/namefilter/pkg/wld"
)

var _ = Describe("Matcher", func() {
	newMatcher := func(ctx context.Context, cacheSize int, timeout time.Duration) *matcher.Matcher {
		m := &matcher.Matcher{
			Config: &core.Config{RegexCacheSize: cacheSize, RegexMatchTimeout: timeout},
			Logger: slog.New(slog.DiscardHandler),
		}
		Expect(m.Init(ctx)).To(Succeed())

		return m
	}

	It("matches both modes", func(ctx context.Context) {
		m := newMatcher(ctx, 4, time.Second)

		Expect(m.PatternMatches(wld.ModeWildcard, "FooTest", "*Test")).To(BeTrue())
		Expect(m.PatternMatches(wld.ModeRegex, "FooTest", ".*Test")).To(BeTrue())
		Expect(m.PatternMatches(wld.ModeRegex, "FooTests", ".*Test")).To(BeFalse())
	})

	It("caches compiled regex patterns up to the configured size", func(ctx context.Context) {
		m := newMatcher(ctx, 2, time.Second)

		for _, pattern := range []string{"a", "b", "c"} {
			_, err := m.PatternMatches(wld.ModeRegex, "a", pattern)
			Expect(err).NotTo(HaveOccurred())
		}

		Expect(m.CachedPatterns()).To(Equal(2))
	})

	It("fails to initialize with an invalid cache size", func(ctx context.Context) {
		m := &matcher.Matcher{
			Config: &core.Config{RegexCacheSize: 0},
			Logger: slog.New(slog.DiscardHandler),
		}

		Expect(m.Init(ctx)).NotTo(Succeed())
	})

	It("bounds regex match time", func(ctx context.Context) {
		m := newMatcher(ctx, 4, 10*time.Millisecond)

		_, err := m.PatternMatches(wld.ModeRegex, strings.Repeat("a", 40)+"!", "(a+)+")
		Expect(err).To(MatchError(wld.ErrMatchTimeout))
	})
})
