// Package main wires the HTTP server for the entity registry service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"entity-registry/config"
	"entity-registry/internal/entities"
	"entity-registry/internal/repository"
	"entity-registry/internal/transport/http/middleware"
	"entity-registry/internal/transport/http/server/handlers-fiber"
	"entity-registry/internal/usecase"
	"entity-registry/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Repository.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, entities.NewFactory(), cfg.HTTP.RequestTimeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTP.RequestTimeout,
		WriteTimeout:          cfg.HTTP.RequestTimeout,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	handlers_fiber.RegisterHandlers(serv, handlers_fiber.NewHandler(log, uc))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("http server listening", "addr", cfg.ServerAddr(), "backend", cfg.Repository.Backend)
		return serv.Listen(cfg.ServerAddr())
	})
	g.Go(func() error {
		<-gctx.Done()
		stop()
		if err := serv.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			log.Warnw("server shutdown", "error", err, "timeout", cfg.Server.ShutdownTimeout)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Errorw("server stopped", "error", err)
	}
}
