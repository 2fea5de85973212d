package routes

import (
	"github.com/dkimathi/airline_reservation/handlers"
	"github.com/dkimathi/airline_reservation/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Post("", handlers.CreateBooking)
	bookings.Get("", handlers.GetAllBookings)
	bookings.Get("/reference/:bookingReference", handlers.GetBookingByReference)
	bookings.Get("/passenger/:passengerId", handlers.GetBookingsByPassenger)
	bookings.Get("/:id", handlers.GetBooking)
	bookings.Patch("/:id/confirm", handlers.ConfirmBooking)
	bookings.Delete("/:id", handlers.CancelBooking)
}
