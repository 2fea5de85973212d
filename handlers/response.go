package handlers

import (
	"errors"
	"log"

	"github.com/dkimathi/airline_reservation/services"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// unrecognized becomes a generic 500 without leaking internals.
func respondError(c *fiber.Ctx, err error) error {
	var (
		notFound      *services.NotFoundError
		alreadyExists *services.AlreadyExistsError
		invalid       *services.InvalidBookingError
		unavailable   *services.SeatUnavailableError
		declined      *services.PaymentFailedError
	)

	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &alreadyExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &unavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &invalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &declined):
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("🔥 Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
}
