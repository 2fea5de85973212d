package services

import (
	"time"

	"github.com/dkimathi/airline_reservation/models"
	"github.com/dkimathi/airline_reservation/payments"
	"github.com/dkimathi/airline_reservation/utils"
)

// SettlePayment charges the booking's total price through the gateway.
// On success the payment is SUCCESS and the booking moves to CONFIRMED; on a
// declined charge nothing is returned for persistence, the booking stays
// PENDING and the caller's transaction rolls back.
// The duplicate-payment check is done by the caller against the store.
func SettlePayment(booking *models.Booking, method string, gateway payments.PaymentGateway) (models.Payment, error) {
	if booking.Status != models.BookingStatusPending {
		return models.Payment{}, &InvalidBookingError{Reason: "Cannot process payment for booking with status: " + booking.Status}
	}

	payment := models.Payment{
		BookingID:     booking.ID,
		TransactionID: utils.GenerateTransactionID(),
		Amount:        booking.TotalPrice,
		PaymentMethod: method,
		PaymentDate:   time.Now(),
	}

	if !gateway.Process(payment.Amount, method) {
		return models.Payment{}, &PaymentFailedError{Reason: "Payment processing failed"}
	}

	payment.Status = models.PaymentStatusSuccess
	booking.Status = models.BookingStatusConfirmed
	return payment, nil
}
