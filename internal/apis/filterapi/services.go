package filterapi

import (
	"github.com/zhulik/pal"
)

func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide(&APIMatch{}),
		pal.Provide(&APIFilters{}),
		pal.Provide(&Server{}),
		pal.Provide(&Echo{}),
	)
}
