package handlers

import (
	"fmt"

	"github.com/dkimathi/airline_reservation/database"
	"github.com/dkimathi/airline_reservation/models"
	"github.com/dkimathi/airline_reservation/notifications"
	"github.com/dkimathi/airline_reservation/payments"
	"github.com/dkimathi/airline_reservation/services"
	"github.com/dkimathi/airline_reservation/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProcessPaymentRequest struct {
	BookingID     string `json:"booking_id" validate:"required,uuid"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=CREDIT_CARD DEBIT_CARD NET_BANKING UPI WALLET"`
}

// ProcessPayment charges a PENDING booking. The booking row is locked so a
// double submit cannot produce two payments; a declined charge returns 402
// and persists nothing.
func ProcessPayment(c *fiber.Ctx) error {
	var req ProcessPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	bookingID, _ := uuid.Parse(req.BookingID)

	var booking models.Booking
	var payment models.Payment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", bookingID).Error; err != nil {
			return &services.NotFoundError{Resource: "Booking", Key: bookingID.String()}
		}

		var count int64
		tx.Model(&models.Payment{}).Where("booking_id = ?", bookingID).Count(&count)
		if count > 0 {
			return &services.InvalidBookingError{Reason: "Payment already processed for this booking"}
		}

		settled, err := services.SettlePayment(&booking, req.PaymentMethod, payments.Gateway)
		if err != nil {
			return err
		}

		if err := tx.Create(&settled).Error; err != nil {
			return err
		}
		payment = settled
		return tx.Save(&booking).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	websocket.PublishSeatEvent(websocket.SeatEvent{
		FlightID:      booking.FlightID,
		BookingStatus: booking.Status,
	})

	var passenger models.Passenger
	if database.DB.First(&passenger, "id = ?", booking.PassengerID).Error == nil {
		go notifications.SendEmail(
			passenger.FirstName+" "+passenger.LastName,
			passenger.Email,
			"Booking "+booking.BookingReference+" confirmed",
			fmt.Sprintf("<p>Your payment of %.2f was received. Transaction %s.</p>", payment.Amount, payment.TransactionID),
		)
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

func GetPayment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment id"})
	}

	var payment models.Payment
	if err := database.DB.Preload("Booking").First(&payment, "id = ?", id).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Payment", Key: id.String()})
	}
	return c.JSON(payment)
}

func GetPaymentByTransactionID(c *fiber.Ctx) error {
	transactionID := c.Params("transactionId")

	var payment models.Payment
	if err := database.DB.Preload("Booking").
		Where("transaction_id = ?", transactionID).First(&payment).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Payment", Key: transactionID})
	}
	return c.JSON(payment)
}

func GetPaymentByBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var payment models.Payment
	if err := database.DB.Where("booking_id = ?", bookingID).First(&payment).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Payment", Key: bookingID.String()})
	}
	return c.JSON(payment)
}

func GetAllPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	database.DB.Order("payment_date desc").Find(&payments)
	return c.JSON(payments)
}
