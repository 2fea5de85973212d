package routes

import (
	"github.com/dkimathi/airline_reservation/handlers"
	"github.com/gofiber/fiber/v2"
)

func SeatRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	seats := api.Group("/seats")
	seats.Get("/flight/:flightId", handlers.GetSeatsByFlight)
	seats.Get("/flight/:flightId/available", handlers.GetAvailableSeatsByFlight)
	seats.Get("/:id", handlers.GetSeat)
}
