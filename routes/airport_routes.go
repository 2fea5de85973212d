package routes

import (
	"github.com/dkimathi/airline_reservation/handlers"
	"github.com/dkimathi/airline_reservation/middleware"
	"github.com/gofiber/fiber/v2"
)

func AirportRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	airports := api.Group("/airports")
	airports.Get("", handlers.GetAllAirports)
	airports.Get("/code/:code", handlers.GetAirportByCode)
	airports.Get("/city/:city", handlers.GetAirportsByCity)
	airports.Get("/:id", handlers.GetAirport)

	admin := airports.Group("", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", handlers.CreateAirport)
	admin.Put("/:id", handlers.UpdateAirport)
	admin.Delete("/:id", handlers.DeleteAirport)
}
