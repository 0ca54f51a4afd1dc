package client

import (
	"github.com/zhulik/namefilter/internal/client/apiclient"
	"github.com/zhulik/pal"
)

func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide(&Runner{}),
		pal.Provide(&apiclient.Client{}),
	)
}
