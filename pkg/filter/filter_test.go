package filter_test

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"github.com/zhulik/namefilter/pkg/codec"
	"github.com/zhulik/namefilter/pkg/filter"
	"github.com/zhulik/namefilter/pkg/wld"
)

var _ = Describe("Parse", func() {
	// load test cases from testdata/filters.json
	p := filepath.Join("testdata", "filters.json")
	data, err := os.ReadFile(p)
	if err != nil {
		panic(fmt.Sprintf("failed to read test data file %s: %v", p, err))
	}

	type testCase struct {
		Filter codec.RawMessage `json:"filter"`
		Error  *string          `json:"error"`
	}

	cases := lo.Must(codec.Unmarshal[[]testCase](codec.FormatJSON, data))

	entries := lo.Map(cases, func(item testCase, index int) any {
		return Entry(fmt.Sprintf("case %d", index), item.Filter, item.Error)
	})

	entries = slices.Concat([]any{func(raw codec.RawMessage, expectedErr *string) {
		_, err := filter.Parse(raw)
		if expectedErr == nil {
			Expect(err).ToNot(HaveOccurred())
		} else {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal(*expectedErr))
		}
	}}, entries)

	DescribeTable("table-driven Parse tests", entries...)

	It("defaults the rule mode to wildcard", func() {
		f := lo.Must(filter.Parse([]byte(`{"Id":"f","Rule":[{"Effect":"Include","Class":["*"]}]}`)))
		Expect(f.Rule[0].Mode).To(Equal(wld.ModeWildcard))
	})

	It("rejects malformed regex patterns", func() {
		_, err := filter.Parse([]byte(`{"Id":"f","Rule":[{"Effect":"Include","Mode":"regex","Class":["("]}]}`))
		Expect(err).To(MatchError(filter.ErrInvalidFilter))
		Expect(err).To(MatchError(wld.ErrInvalidPattern))
	})

	It("rejects malformed regex method patterns", func() {
		_, err := filter.Parse(
			[]byte(`{"Id":"f","Rule":[{"Effect":"Include","Mode":"regex","Class":[".*"],"Method":["[a-"]}]}`),
		)
		Expect(err).To(MatchError(wld.ErrInvalidPattern))
		Expect(err.Error()).To(ContainSubstring("invalid Method in Rule 0"))
	})

	It("fails on malformed json", func() {
		_, err := filter.Parse([]byte(`{`))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Evaluate", func() {
	matcher := filter.MatcherFunc(wld.PatternMatches)

	f := &filter.Filter{
		ID: "service-getters",
		Rule: []filter.Rule{
			{Effect: filter.EffectInclude, Class: []string{"com.example.*Service"}, Method: []string{"get*", "is?*"}},
			{Effect: filter.EffectExclude, Mode: wld.ModeRegex, Class: []string{`com\.example\.internal\..*`}},
			{Effect: filter.EffectInclude, Mode: filter.ModeLiteral, Class: []string{"java.lang.String", "Outer$Inner"}},
			{Effect: filter.EffectExclude, Class: []string{"*"}, Method: []string{"getPassword"}},
		},
	}

	DescribeTable("names",
		func(className, methodName string, want bool) {
			ok, err := f.Evaluate(matcher, className, methodName)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(Equal(want))
		},
		Entry("included getter", "com.example.UserService", "getName", true),
		Entry("included boolean getter", "com.example.UserService", "isActive", true),
		Entry("method not listed", "com.example.UserService", "setName", false),
		Entry("class not listed", "com.example.UserRepository", "getName", false),
		Entry("excluded package wins", "com.example.internal.AuditService", "getName", false),
		Entry("excluded method wins", "com.example.UserService", "getPassword", false),
		Entry("literal class with any method", "java.lang.String", "length", true),
		Entry("literal class with dollar", "Outer$Inner", "run", true),
		Entry("literal does not act as wildcard", "javaXlangXString", "length", false),
		Entry("literal is not a prefix match", "java.lang.StringBuilder", "append", false),
	)

	It("selects nothing without rules", func() {
		ok, err := (&filter.Filter{ID: "empty"}).Evaluate(matcher, "a", "b")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("propagates matcher errors", func() {
		broken := &filter.Filter{
			ID:   "broken",
			Rule: []filter.Rule{{Effect: filter.EffectInclude, Mode: wld.ModeRegex, Class: []string{"("}}},
		}

		_, err := broken.Evaluate(matcher, "a", "b")
		Expect(err).To(MatchError(wld.ErrInvalidPattern))
	})

	It("clones rules deeply", func() {
		original := &filter.Filter{
			ID: "orig",
			Rule: []filter.Rule{
				{Effect: filter.EffectInclude, Class: []string{"*Test"}, Method: []string{"test*"}},
			},
		}

		clone := original.Clone()
		Expect(clone).To(Equal(original))

		clone.Rule[0].Class[0] = "Other"
		clone.Rule[0].Method = append(clone.Rule[0].Method, "setUp")
		clone.Rule = append(clone.Rule, filter.Rule{Effect: filter.EffectExclude, Class: []string{"*"}})

		Expect(original.Rule).To(HaveLen(1))
		Expect(original.Rule[0].Class).To(Equal([]string{"*Test"}))
		Expect(original.Rule[0].Method).To(Equal([]string{"test*"}))
	})

	It("evaluates yaml documents", func() {
		doc := `
id: yaml-filter
rule:
  - effect: Include
    class: ["*Controller"]
  - effect: Exclude
    mode: literal
    class: ["LegacyController"]
`
		yf := lo.Must(codec.Unmarshal[filter.Filter](codec.FormatYAML, []byte(doc)))
		Expect(yf.Validate()).To(Succeed())

		Expect(yf.Evaluate(matcher, "UserController", "index")).To(BeTrue())
		Expect(yf.Evaluate(matcher, "LegacyController", "index")).To(BeFalse())
	})
})
