package routes

import (
	"github.com/dkimathi/airline_reservation/handlers"
	"github.com/dkimathi/airline_reservation/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments", middleware.Protected())
	payments.Post("", handlers.ProcessPayment)
	payments.Get("", handlers.GetAllPayments)
	payments.Get("/transaction/:transactionId", handlers.GetPaymentByTransactionID)
	payments.Get("/booking/:bookingId", handlers.GetPaymentByBooking)
	payments.Get("/:id", handlers.GetPayment)
}
