package config_fx

import (
	"log/slog"

	"go.uber.org/fx"
	"pahunapath/internal/config"
	"pahunapath/internal/logging"
	"pahunapath/pkg/utils"
)

var Module = fx.Provide(provideConfig, provideLogger, provideTokenIssuer)

func provideConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func provideLogger(cfg config.Config) *slog.Logger {
	return logging.New(cfg.LogLevel)
}

func provideTokenIssuer(cfg config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL())
}
