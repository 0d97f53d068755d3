package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/okiedokie/student-image-finder/pkg/lookup"
	"github.com/okiedokie/student-image-finder/pkg/search"
	"github.com/okiedokie/student-image-finder/pkg/student"
)

type StudentResponse struct {
	ScholarID string                `json:"scholarId"`
	Summary   student.Summary       `json:"summary"`
	Slots     []student.DisplaySlot `json:"slots"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

// StudentHandler looks up the :id param and answers with the projected
// header and visible photo cards.
func StudentHandler(svc lookup.Service, slots []student.SlotDefinition, logger *slog.Logger) fiber.Handler {
	const studentContextTimeout time.Duration = 15 * time.Second

	if logger == nil {
		logger = slog.Default()
	}
	if slots == nil {
		slots = student.DefaultSlots
	}

	logger = logger.With(slog.String("handler", "StudentHandler"))

	return func(c *fiber.Ctx) error {
		if svc == nil {
			logger.Error("missing lookup service")
			return fiber.NewError(fiber.StatusInternalServerError, "server misconfigured")
		}

		scholarID, err := url.PathUnescape(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(DetailResponse{Detail: "malformed Scholar ID"})
		}

		if err := search.Validate(scholarID); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(DetailResponse{Detail: search.UserMessage(err)})
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), studentContextTimeout)
		defer cancel()

		record, err := svc.Student(ctx, scholarID)
		if err != nil {
			var de *lookup.DetailError
			if errors.As(err, &de) {
				return c.Status(fiber.StatusNotFound).JSON(DetailResponse{Detail: de.Detail})
			}

			logger.Error("student lookup failed", slog.Any("err", err))
			return c.Status(fiber.StatusBadGateway).JSON(DetailResponse{Detail: lookup.GenericMessage})
		}

		return c.Status(fiber.StatusOK).JSON(StudentResponse{
			ScholarID: scholarID,
			Summary:   student.Summarize(record),
			Slots:     student.Cards(record, slots),
		})
	}
}
