package api

import (
	"errors"
	"log/slog"
	"runtime/debug"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	slogfiber "github.com/samber/slog-fiber"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/okiedokie/student-image-finder/api/routes"
	"github.com/okiedokie/student-image-finder/pkg/circuitbreaker"
	"github.com/okiedokie/student-image-finder/pkg/core"
	"github.com/okiedokie/student-image-finder/pkg/lookup"
)

func errorHandler(logger *slog.Logger, otel core.OtelService) fiber.ErrorHandler {
	spanFrom := trace.SpanFromContext
	if otel != nil {
		spanFrom = otel.SpanFromContext
	}

	handleFiberError := func(ctx *fiber.Ctx, err *fiber.Error) error {
		span := spanFrom(ctx.UserContext())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Message)

		logger.Error(
			"Fiber Error",
			"Code",
			err.Code,
			"Message",
			err.Message,
		)

		return ctx.
			Status(err.Code).
			SendString(err.Message)
	}

	return func(ctx *fiber.Ctx, err error) error {
		var e *fiber.Error
		if !errors.As(err, &e) {
			e = fiber.ErrInternalServerError
		}
		return handleFiberError(ctx, e)
	}
}

func stackTraceHandler(logger *slog.Logger) func(*fiber.Ctx, any) {
	return func(c *fiber.Ctx, e any) {
		stack := debug.Stack()
		logger.ErrorContext(
			c.UserContext(),
			"panic!",
			"stack",
			string(stack),
			"err",
			e,
		)
	}
}

type Config struct {
	Otel   core.OtelService
	Logger *slog.Logger
	Lookup lookup.Service
	Redis  redis.Cmdable
	// Breaker options for the lookup routes; defaults when zero.
	Breaker circuitbreaker.Options
	core.Config
}

func New(cfg *Config) *fiber.App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	fiberConfig := fiber.Config{
		ErrorHandler: errorHandler(logger, cfg.Otel),
		AppName:      "student-image-finder",
	}

	app := fiber.New(fiberConfig)

	app.Use(recover.New(recover.Config{
		Next:              nil,
		EnableStackTrace:  true,
		StackTraceHandler: stackTraceHandler(logger),
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: "*",
		AllowMethods: "GET,OPTIONS",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(slogfiber.NewWithConfig(
		logger,
		slogfiber.Config{
			WithRequestID: true,
			WithSpanID:    true,
			WithTraceID:   true,
		},
	))

	routes.RegisterRoutes(app, routes.Deps{
		Lookup:  cfg.Lookup,
		Redis:   cfg.Redis,
		Breaker: cfg.Breaker,
		Logger:  logger,
	})

	return app
}
