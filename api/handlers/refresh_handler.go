package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/okiedokie/student-image-finder/pkg/lookup"
)

type RefreshResponse struct {
	OK bool `json:"ok"`
}

// RefreshSheetHandler forwards a refresh request upstream. The outcome is
// reported as a boolean; the request itself always succeeds.
func RefreshSheetHandler(svc lookup.Service, logger *slog.Logger) fiber.Handler {
	const refreshContextTimeout time.Duration = 30 * time.Second

	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("handler", "RefreshSheetHandler"))

	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), refreshContextTimeout)
		defer cancel()

		ok, err := svc.RefreshSheet(ctx)
		if err != nil {
			logger.Warn("refresh sheet failed", slog.Any("err", err))
		}

		return c.Status(fiber.StatusOK).JSON(RefreshResponse{OK: ok})
	}
}
