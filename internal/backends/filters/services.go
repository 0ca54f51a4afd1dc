package filters

import (
	"fmt"

	"github.com/zhulik/namefilter/internal/backends/filters/file"
	"github.com/zhulik/namefilter/internal/backends/filters/s3"
	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/pal"
)

func Provide(config *core.Config) pal.ServiceDef {
	var store pal.ServiceDef

	switch config.FilterBackend {
	case core.FilterBackendYAML:
		store = pal.Provide[core.DocumentStore](&file.Store{})
	case core.FilterBackendS3:
		store = pal.Provide[core.DocumentStore](&s3.Store{})
	default:
		panic(fmt.Sprintf("unknown filter backend: %s", config.FilterBackend))
	}

	return pal.ProvideList(
		store,
		pal.Provide[core.FilterBackend](&Backend{}),
	)
}
