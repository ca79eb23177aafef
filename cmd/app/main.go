package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"pahunapath/cmd/fx/account_fx"
	"pahunapath/cmd/fx/admin_fx"
	"pahunapath/cmd/fx/config_fx"
	"pahunapath/cmd/fx/controllers_fx"
	"pahunapath/cmd/fx/db_fx"
	"pahunapath/cmd/fx/media_fx"
	"pahunapath/cmd/fx/memcache_fx"
	"pahunapath/cmd/fx/places_fx"
	"pahunapath/cmd/fx/redis_fx"
	"pahunapath/internal/api"
	"pahunapath/internal/config"
	"pahunapath/pkg/middleware"
	"pahunapath/pkg/utils"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		config_fx.Module,
		db_fx.Module,
		redis_fx.Module,
		memcache_fx.Module,
		media_fx.Module,
		account_fx.Module,
		places_fx.Module,
		admin_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			slog.Info("starting HTTP server", "addr", srv.Addr)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("http server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(ctrl api.Controllers, issuer *utils.TokenIssuer, revoked middleware.RevocationChecker) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	return api.NewRouter(ctrl, issuer, revoked)
}
