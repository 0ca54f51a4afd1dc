package matcher

import (
	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/pal"
)

func Provide() pal.ServiceDef {
	return pal.Provide[core.PatternMatcher](&Matcher{})
}
