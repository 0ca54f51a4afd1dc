package api_test

import (
	"context"
	"os"

	"github.com/samber/lo"
	"github.com/zhulik/namefilter/integration/testhelpers"
	"github.com/zhulik/namefilter/internal/client/apiclient"
	"github.com/zhulik/namefilter/pkg/filter"
	"github.com/zhulik/namefilter/pkg/wld"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func suiteFilter(id string) *filter.Filter {
	return &filter.Filter{
		ID: id,
		Rule: []filter.Rule{
			{Effect: filter.EffectInclude, Class: []string{"*Test", "*IT"}},
			{Effect: filter.EffectExclude, Class: []string{"Flaky*"}},
			{Effect: filter.EffectExclude, Mode: filter.ModeLiteral, Class: []string{"Odd$Test"}},
			{
				Effect: filter.EffectInclude,
				Mode:   wld.ModeRegex,
				Class:  []string{`Api\w+`},
				Method: []string{"get.*"},
			},
		},
	}
}

var _ = Describe("Filters API", Label("api"), Label("api-filters"), Ordered, func() {
	var (
		client *apiclient.Client
		app    *testhelpers.App
	)

	BeforeAll(func(ctx context.Context) {
		app = testhelpers.NewApp() //nolint:contextcheck
		client = app.Client(ctx)
	})

	AfterAll(func(ctx context.Context) {
		app.Stop(ctx)
	})

	Describe("ListFilters", func() {
		When("no filters exist", func() {
			It("returns an empty list", func(ctx context.Context) {
				ids, err := client.ListFilters(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(ids).To(BeEmpty())
			})
		})

		When("filters exist", func() {
			BeforeAll(func(ctx context.Context) {
				lo.Must0(client.CreateFilter(ctx, suiteFilter("list-b")))
				lo.Must0(client.CreateFilter(ctx, suiteFilter("list-a")))
			})

			It("returns sorted ids", func(ctx context.Context) {
				ids, err := client.ListFilters(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(ids).To(Equal([]string{"list-a", "list-b"}))
			})
		})
	})

	Describe("CreateFilter", func() {
		It("creates a filter", func(ctx context.Context) {
			Expect(client.CreateFilter(ctx, suiteFilter("created"))).To(Succeed())

			f, err := client.GetFilter(ctx, "created")
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Rule).To(HaveLen(4))
			Expect(f.Rule[0].Mode).To(Equal(wld.ModeWildcard))
		})

		It("rejects duplicates", func(ctx context.Context) {
			err := client.CreateFilter(ctx, suiteFilter("created"))
			Expect(err).To(MatchError(ContainSubstring("409")))
		})

		It("rejects invalid patterns", func(ctx context.Context) {
			f := suiteFilter("invalid")
			f.Rule[3].Class = []string{"("}

			err := client.CreateFilter(ctx, f)
			Expect(err).To(MatchError(apiclient.ErrUnexpectedStatus))
			Expect(err).To(MatchError(ContainSubstring("400")))
		})
	})

	Describe("UpdateFilter", func() {
		It("replaces the filter", func(ctx context.Context) {
			lo.Must0(client.CreateFilter(ctx, suiteFilter("updated")))

			f := suiteFilter("updated")
			f.Rule = f.Rule[:1]
			Expect(client.UpdateFilter(ctx, f)).To(Succeed())

			stored, err := client.GetFilter(ctx, "updated")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Rule).To(HaveLen(1))
		})

		It("fails for missing filters", func(ctx context.Context) {
			err := client.UpdateFilter(ctx, suiteFilter("never-created"))
			Expect(err).To(MatchError(ContainSubstring("404")))
		})
	})

	Describe("DeleteFilter", func() {
		It("deletes the filter", func(ctx context.Context) {
			lo.Must0(client.CreateFilter(ctx, suiteFilter("deleted")))

			Expect(client.DeleteFilter(ctx, "deleted")).To(Succeed())

			_, err := client.GetFilter(ctx, "deleted")
			Expect(err).To(MatchError(ContainSubstring("404")))
		})
	})

	Describe("EvaluateFilter", func() {
		BeforeAll(func(ctx context.Context) {
			lo.Must0(client.CreateFilter(ctx, suiteFilter("evaluated")))
		})

		DescribeTable("selects classes and methods",
			func(ctx context.Context, className, methodName string, expected bool) {
				matched, err := client.EvaluateFilter(ctx, "evaluated", className, methodName)
				Expect(err).NotTo(HaveOccurred())
				Expect(matched).To(Equal(expected))
			},
			Entry("included test", "FooTest", "run", true),
			Entry("included integration test", "FooIT", "run", true),
			Entry("excluded flaky test", "FlakyTest", "run", false),
			Entry("excluded literal", "Odd$Test", "run", false),
			Entry("literal is not a pattern", "OddXTest", "run", true),
			Entry("regex class with matching method", "ApiClient", "getUser", true),
			Entry("regex class with other method", "ApiClient", "deleteUser", false),
			Entry("unmatched", "Helper", "run", false),
		)
	})

	Describe("external changes", func() {
		It("are picked up by the server", func(ctx context.Context) {
			document := "version: 1\nfilters:\n  external:\n    rule:\n      - effect: Include\n        class: ['*']\n"
			lo.Must0(os.WriteFile(app.DocumentPath(), []byte(document), 0644))

			Eventually(func(ctx context.Context) ([]string, error) {
				return client.ListFilters(ctx)
			}).WithContext(ctx).Should(Equal([]string{"external"}))

			_, err := app.FilterBackend(ctx).GetFilterByID(ctx, "external")
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
