package middleware

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/okiedokie/student-image-finder/pkg/circuitbreaker"
)

// WithCircuitBreaker guards handlers with one breaker per route. A response
// of 500 or above counts as a failure; anything else resets the count.
func WithCircuitBreaker(newBreaker func(name string) circuitbreaker.Breaker) func(fiber.Handler) fiber.Handler {
	var mu sync.RWMutex
	breakers := make(map[string]circuitbreaker.Breaker)

	getBreaker := func(name string) circuitbreaker.Breaker {
		mu.RLock()
		b := breakers[name]
		mu.RUnlock()
		if b != nil {
			return b
		}

		mu.Lock()
		defer mu.Unlock()
		if b = breakers[name]; b != nil {
			return b
		}

		b = newBreaker(name)
		breakers[name] = b
		return b
	}

	return func(next fiber.Handler) fiber.Handler {
		return func(c *fiber.Ctx) error {
			breaker := getBreaker(breakerName(c))
			ctx := c.UserContext()

			err := breaker.Allow(ctx)
			if err != nil {
				if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
					return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
						"error": "service temporarily unavailable",
						"code":  "CIRCUIT_OPEN",
					})
				}

				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"error": "service temporarily unavailable",
					"code":  "BREAKER_ERROR",
				})
			}

			err = next(c)

			status := c.Response().StatusCode()
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else if err != nil {
				status = fiber.StatusInternalServerError
			}

			if status >= fiber.StatusInternalServerError {
				breaker.OnFailure(ctx)
			} else {
				breaker.OnSuccess(ctx)
			}

			return err
		}
	}
}

func breakerName(c *fiber.Ctx) string {
	var path string
	r := c.Route()
	if r != nil && r.Path != "" {
		path = r.Path
	} else {
		path = c.Path()
	}

	return c.Method() + " " + path
}
