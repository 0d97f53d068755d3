package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/okiedokie/student-image-finder/api/handlers"
)

func StatusRouter(app fiber.Router, rdb redis.Cmdable) {
	app.Get("/status", handlers.StatusHandler(rdb))
}
