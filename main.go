package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/okiedokie/student-image-finder/api"
	"github.com/okiedokie/student-image-finder/pkg/circuitbreaker"
	"github.com/okiedokie/student-image-finder/pkg/core"
	"github.com/okiedokie/student-image-finder/pkg/lookup"
	"github.com/okiedokie/student-image-finder/pkg/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := core.LoadEnv(); err != nil {
		slog.Warn("failed to load env files", "err", err)
	}

	cfg, err := core.NewConfigFromEnv()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	otel, err := core.NewOtelService(ctx, &cfg)
	if err != nil {
		slog.Error("failed to initialize otel", "err", err)
		os.Exit(1)
	}

	logger := core.NewLoggerWithOtel(cfg, otel)
	defer otel.Shutdown(context.Background(), logger)

	app := buildApp(&cfg, otel, logger)

	addr := ":" + strconv.Itoa(cfg.Port)
	if err := runServer(ctx, app, addr); err != nil {
		logger.Error("server error", "err", err)
	}
}

func buildApp(cfg *core.Config, otel core.OtelService, logger *slog.Logger) *fiber.App {
	rdb := redis.NewClient(cfg.Redis, logger)

	svc := lookup.New(cfg, lookup.Options{
		Logger: logger,
	})

	return api.New(&api.Config{
		Otel:    otel,
		Logger:  logger,
		Lookup:  svc,
		Redis:   rdb,
		Breaker: circuitbreaker.DefaultOptions(),
		Config:  *cfg,
	})
}

func runServer(ctx context.Context, app *fiber.App, addr string) error {
	srvErr := make(chan error, 1)

	go func() {
		srvErr <- app.Listen(addr)
	}()

	select {
	case err := <-srvErr:
		return err
	case <-ctx.Done():
	}

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	return nil
}
