package redis_fx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"pahunapath/internal/config"
	"pahunapath/internal/infra"
	"pahunapath/internal/services"
	"pahunapath/pkg/middleware"
)

var Module = fx.Provide(
	provideRedis, provideSessionStore, provideRevocationChecker)

func provideRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := infra.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func provideSessionStore(client *redis.Client) services.SessionStore {
	return services.NewRedisSessionStore(client)
}

func provideRevocationChecker(sessions services.SessionStore) middleware.RevocationChecker {
	return sessions
}
