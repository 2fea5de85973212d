package routes

import (
	"github.com/dkimathi/airline_reservation/handlers"
	"github.com/dkimathi/airline_reservation/middleware"
	"github.com/gofiber/fiber/v2"
)

func PassengerRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	passengers := api.Group("/passengers", middleware.Protected())
	passengers.Post("", handlers.CreatePassenger)
	passengers.Get("", handlers.GetAllPassengers)
	passengers.Get("/email/:email", handlers.GetPassengerByEmail)
	passengers.Get("/:id", handlers.GetPassenger)
	passengers.Put("/:id", handlers.UpdatePassenger)
	passengers.Delete("/:id", handlers.DeletePassenger)
}
