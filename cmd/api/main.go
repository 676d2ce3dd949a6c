package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/justsurfingit/ats-api/internal/config"
	"github.com/justsurfingit/ats-api/internal/database"
	"github.com/justsurfingit/ats-api/internal/handlers"
	"github.com/justsurfingit/ats-api/internal/logging"
	"github.com/justsurfingit/ats-api/internal/server"
	"github.com/justsurfingit/ats-api/internal/services"
	"github.com/justsurfingit/ats-api/internal/telemetry"
)

func newDatabase(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	return db, nil
}

func newProvider(db *gorm.DB, cfg *config.Config, logger *zap.Logger) *database.Provider {
	return database.NewProvider(db, logger, cfg.DBQueryTimeout)
}

// newTracer exports spans only when a collector is configured; otherwise the
// global no-op provider is used.
func newTracer(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (trace.Tracer, error) {
	if cfg.OTELCollectorURL == "" {
		return telemetry.GetTracer(), nil
	}

	shutdown, err := telemetry.InitTracer(context.Background(), cfg.OTELServiceName, cfg.OTELCollectorURL)
	if err != nil {
		return nil, err
	}
	logger.Info("Tracing enabled", zap.String("collector", cfg.OTELCollectorURL))
	lc.Append(fx.Hook{OnStop: shutdown})
	return telemetry.GetTracer(), nil
}

func newRouter(cfg *config.Config, jobHandler *handlers.JobHandler, appHandler *handlers.ApplicationHandler, provider *database.Provider, logger *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	return server.NewRouter(jobHandler, appHandler, provider, logger)
}

func registerServer(lc fx.Lifecycle, srv *server.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			err := srv.Shutdown(ctx)
			_ = logger.Sync()
			return err
		},
	})
}

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			config.LoadConfig,
			logging.New,
			newDatabase,
			newProvider,
			newTracer,
			services.NewJobService,
			services.NewApplicationService,
			handlers.NewJobHandler,
			handlers.NewApplicationHandler,
			newRouter,
			server.New,
		),
		fx.Invoke(registerServer),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
