package media_fx

import (
	"go.uber.org/fx"
	"pahunapath/internal/config"
	"pahunapath/internal/mediastore"
	"pahunapath/internal/mediastore/local"
)

var Module = fx.Provide(provideMediaStore)

func provideMediaStore(cfg config.Config) (mediastore.Store, error) {
	return local.NewDiskStore(cfg.MediaPath)
}
