package locker

import (
	"fmt"

	"github.com/zhulik/namefilter/internal/core"
	"github.com/zhulik/pal"
)

func Provide(config *core.Config) pal.ServiceDef {
	switch config.Locker {
	case core.LockerRedis:
		return pal.Provide[core.Locker](&Locker{})
	case core.LockerLocal:
		return pal.Provide[core.Locker](&LocalLocker{})
	default:
		panic(fmt.Sprintf("unknown locker: %s", config.Locker))
	}
}
