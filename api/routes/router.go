package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/okiedokie/student-image-finder/api/handlers"
	"github.com/okiedokie/student-image-finder/api/middleware"
	"github.com/okiedokie/student-image-finder/pkg/circuitbreaker"
	"github.com/okiedokie/student-image-finder/pkg/lookup"
)

type Deps struct {
	Lookup  lookup.Service
	Redis   redis.Cmdable
	Breaker circuitbreaker.Options
	Logger  *slog.Logger
}

func RegisterRoutes(app fiber.Router, deps Deps) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend running!")
	})

	StatusRouter(app, deps.Redis)

	api := app.Group("/api")

	withCB := middleware.WithCircuitBreaker(func(name string) circuitbreaker.Breaker {
		return circuitbreaker.NewRedisBreaker(
			deps.Redis,
			name,
			deps.Breaker,
			logger,
		)
	})

	api.Get("/student/:id", withCB(handlers.StudentHandler(deps.Lookup, nil, logger)))
	api.Get("/refresh-sheet", withCB(handlers.RefreshSheetHandler(deps.Lookup, logger)))
}
