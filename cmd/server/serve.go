package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/fyyur/internal/config"
	"github.com/iliyamo/fyyur/internal/database"
	"github.com/iliyamo/fyyur/internal/flash"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/router"
	"github.com/iliyamo/fyyur/internal/service"
	"github.com/iliyamo/fyyur/internal/view"
)

const shutdownTimeout = 10 * time.Second

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if autoMigrate {
		if err := database.Migrate(ctx, db, cfg.DBDriver); err != nil {
			return err
		}
		logger.Info("schema applied", zap.String("driver", cfg.DBDriver))
	}

	var events service.EventPublisher = queue.Noop{}
	if cfg.EventsEnabled {
		pub := queue.NewPublisher(cfg.RabbitURL, logger)
		defer pub.Close()
		events = pub
	}

	svc := service.New(
		repository.NewVenueRepo(db),
		repository.NewArtistRepo(db),
		repository.NewShowRepo(db),
		events,
		time.Now,
		logger,
	)
	renderer, err := view.New()
	if err != nil {
		return err
	}
	h := handler.New(svc, flash.New(cfg.SessionSecret, cfg.IsProd()), logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = h.ErrorHandler
	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(logger))

	opts := router.Options{}
	if rdb := config.NewRedisClient(config.LoadRedisConfig(), logger); rdb != nil {
		defer rdb.Close()
		cacheCfg := config.LoadCacheConfig()
		opts.Cache = middleware.NewRedisCache(cacheCfg, rdb, logger)
		opts.Invalidate = middleware.InvalidateCache(cacheCfg, rdb, logger)
		opts.RateLimit = middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, logger)
	}
	router.Register(e, h, opts)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + cfg.Port
		logger.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return e.Shutdown(sctx)
	})
	if cfg.EventsEnabled {
		g.Go(func() error {
			return queue.StartShowConsumer(gctx, cfg.RabbitURL, cfg.EventLogDir, logger)
		})
	}
	err = g.Wait()
	// publishes still in flight need the DB and the broker
	svc.Wait()
	return err
}
