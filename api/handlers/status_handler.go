package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	redisLocal "github.com/okiedokie/student-image-finder/pkg/redis"
)

const statusPingTimeout = 2 * time.Second

// StatusHandler reports whether the breaker store is reachable. The lookup
// routes still answer while redis is down, so this is informational.
func StatusHandler(rdb redis.Cmdable) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), statusPingTimeout)
		defer cancel()

		if err := redisLocal.Ping(ctx, rdb); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "redis unavailable")
		}
		return c.JSON(fiber.Map{"redis": "up"})
	}
}
