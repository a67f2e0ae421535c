package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"travelguide/cmd/fx/account_fx"
	"travelguide/cmd/fx/catalog_fx"
	"travelguide/cmd/fx/config_fx"
	"travelguide/cmd/fx/controllers_fx"
	"travelguide/cmd/fx/db_fx"
	"travelguide/cmd/fx/memcache_fx"
	"travelguide/cmd/fx/seed_fx"
	"travelguide/cmd/fx/trip_fx"
	"travelguide/internal/api"
	"travelguide/internal/api/controllers"
	"travelguide/internal/config"
	"travelguide/pkg/middleware"
	mem "travelguide/pkg/memcache"
	"travelguide/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		trip_fx.Module,
		seed_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter, provideFxLogSink),
		// first so its OnStop hook runs last and shutdown events are still logged
		fx.Invoke(closeFxLogSink),
		fx.Invoke(StartServer),
		fx.WithLogger(func(sink fxLogSink) fxevent.Logger {
			return &fxevent.ConsoleLogger{W: sink}
		}),
	)

	app.Run()
}

// fxLogSink routes fx lifecycle events into logrus at debug level.
type fxLogSink struct{ io.WriteCloser }

func provideFxLogSink(log *logrus.Logger) fxLogSink {
	return fxLogSink{log.WriterLevel(logrus.DebugLevel)}
}

func closeFxLogSink(lc fx.Lifecycle, sink fxLogSink) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return sink.Close()
		},
	})
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *logrus.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infof("Starting HTTP server at :%s", cfg.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *logrus.Logger,
	tokens *utils.TokenIssuer,
	revoked mem.RevokedTokenStore,
	destinationController *controllers.DestinationController,
	experienceController *controllers.ExperienceController,
	tripController *controllers.TripController,
	accountController *controllers.AccountController,
	systemController *controllers.SystemController) *gin.Engine {

	return api.NewRouter(api.Options{
		FrontendURLs: cfg.FrontendURLs,
		AccessLog:    log.Out,
		Auth:         middleware.JWTAuthMiddleware(tokens, revoked),
	}, api.Handlers{
		Destinations: destinationController,
		Experiences:  experienceController,
		Trips:        tripController,
		Accounts:     accountController,
		System:       systemController,
	})
}
