package memcache_fx

import (
	"go.uber.org/fx"
	mem "pahunapath/pkg/memcache"
)

var Module = fx.Provide(providePendingActions)

func providePendingActions() mem.PendingActionStore {
	return mem.NewPendingActions()
}
