package services

import (
	"strings"
	"testing"

	"github.com/dkimathi/airline_reservation/models"
	"github.com/dkimathi/airline_reservation/payments"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlePayment_Success(t *testing.T) {
	booking := &models.Booking{
		ID:         uuid.New(),
		Status:     models.BookingStatusPending,
		TotalPrice: 450.50,
	}

	payment, err := SettlePayment(booking, "CREDIT_CARD", payments.StubGateway{Succeed: true})

	require.NoError(t, err)
	assert.Equal(t, booking.ID, payment.BookingID)
	assert.Equal(t, 450.50, payment.Amount)
	assert.Equal(t, "CREDIT_CARD", payment.PaymentMethod)
	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)
	assert.True(t, strings.HasPrefix(payment.TransactionID, "TXN"))
	assert.False(t, payment.PaymentDate.IsZero())
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
}

func TestSettlePayment_DeclinedLeavesBookingPending(t *testing.T) {
	booking := &models.Booking{
		ID:         uuid.New(),
		Status:     models.BookingStatusPending,
		TotalPrice: 450.50,
	}

	payment, err := SettlePayment(booking, "UPI", payments.StubGateway{Succeed: false})

	var failed *PaymentFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "Payment processing failed", failed.Reason)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Empty(t, payment.TransactionID)
}

func TestSettlePayment_RejectsNonPendingBooking(t *testing.T) {
	for _, status := range []string{
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
		models.BookingStatusCompleted,
	} {
		booking := &models.Booking{ID: uuid.New(), Status: status}

		_, err := SettlePayment(booking, "WALLET", payments.StubGateway{Succeed: true})

		var invalid *InvalidBookingError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Cannot process payment for booking with status: "+status, invalid.Reason)
	}
}
