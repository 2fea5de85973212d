package routes

import (
	"github.com/dkimathi/airline_reservation/handlers"
	"github.com/dkimathi/airline_reservation/middleware"
	wshub "github.com/dkimathi/airline_reservation/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func FlightRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	flights := api.Group("/flights")
	flights.Get("", handlers.GetAllFlights)
	flights.Post("/search", handlers.SearchFlights)
	flights.Post("/search/unified", handlers.SearchUnifiedFlights)
	flights.Get("/external", handlers.GetExternalFlights)
	flights.Get("/external/number/:flightNumber", handlers.GetExternalFlightsByNumber)
	flights.Get("/external/:externalId", handlers.GetExternalFlightByID)
	flights.Get("/number/:flightNumber", handlers.GetFlightByNumber)
	flights.Get("/:id", handlers.GetFlight)

	admin := flights.Group("", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", handlers.CreateFlight)
	admin.Post("/import-from-external", handlers.ImportExternalFlight)
	admin.Patch("/:id/status", handlers.UpdateFlightStatus)
	admin.Delete("/:id", handlers.DeleteFlight)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws/flights/:flightId", websocket.New(wshub.ServeFlightFeed))
}
