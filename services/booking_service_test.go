package services

import (
	"strings"
	"testing"

	"github.com/dkimathi/airline_reservation/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBooking_Success(t *testing.T) {
	flight := newTestFlight(60, 100)
	passenger := &models.Passenger{ID: uuid.New()}
	seat := &models.Seat{
		ID:         uuid.New(),
		FlightID:   flight.ID,
		SeatNumber: "3A",
		SeatClass:  models.SeatClassBusiness,
		Price:      200,
		Status:     models.SeatStatusAvailable,
	}

	booking, err := BuildBooking(passenger, flight, seat)

	require.NoError(t, err)
	assert.Equal(t, passenger.ID, booking.PassengerID)
	assert.Equal(t, flight.ID, booking.FlightID)
	assert.Equal(t, seat.ID, booking.SeatID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, 300.0, booking.TotalPrice)
	assert.True(t, strings.HasPrefix(booking.BookingReference, "BK"))
	assert.Equal(t, models.SeatStatusReserved, seat.Status)
	assert.Equal(t, 59, flight.AvailableSeats)
}

func TestBuildBooking_SeatTakenLeavesNothingBehind(t *testing.T) {
	flight := newTestFlight(60, 100)
	passenger := &models.Passenger{ID: uuid.New()}
	seat := &models.Seat{
		ID:       uuid.New(),
		FlightID: flight.ID,
		Status:   models.SeatStatusOccupied,
	}

	booking, err := BuildBooking(passenger, flight, seat)

	var unavailable *SeatUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Empty(t, booking.BookingReference)
	assert.Equal(t, 60, flight.AvailableSeats)
}

func TestConfirmBooking_Success(t *testing.T) {
	booking := &models.Booking{Status: models.BookingStatusPending}
	seat := &models.Seat{SeatNumber: "1A", Status: models.SeatStatusReserved}

	require.NoError(t, ConfirmBooking(booking, seat))
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, models.SeatStatusOccupied, seat.Status)
}

func TestConfirmBooking_OnlyPending(t *testing.T) {
	seat := &models.Seat{SeatNumber: "1A", Status: models.SeatStatusReserved}

	for _, status := range []string{
		models.BookingStatusConfirmed,
		models.BookingStatusCancelled,
		models.BookingStatusCompleted,
	} {
		booking := &models.Booking{Status: status}
		err := ConfirmBooking(booking, seat)

		var invalid *InvalidBookingError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Only pending bookings can be confirmed", invalid.Reason)
		assert.Equal(t, status, booking.Status)
	}
}

func TestCancelBooking_ReleasesSeat(t *testing.T) {
	flight := newTestFlight(60, 100)
	seat := &models.Seat{FlightID: flight.ID, SeatNumber: "1A", Status: models.SeatStatusAvailable}
	require.NoError(t, ReserveSeat(seat, flight))
	booking := &models.Booking{Status: models.BookingStatusPending}

	require.NoError(t, CancelBooking(booking, seat, flight))

	assert.Equal(t, models.BookingStatusCancelled, booking.Status)
	assert.Equal(t, models.SeatStatusAvailable, seat.Status)
	assert.Equal(t, 60, flight.AvailableSeats)
}

func TestCancelBooking_TwiceFails(t *testing.T) {
	flight := newTestFlight(60, 100)
	seat := &models.Seat{FlightID: flight.ID, SeatNumber: "1A", Status: models.SeatStatusAvailable}
	require.NoError(t, ReserveSeat(seat, flight))
	booking := &models.Booking{Status: models.BookingStatusPending}

	require.NoError(t, CancelBooking(booking, seat, flight))
	err := CancelBooking(booking, seat, flight)

	var invalid *InvalidBookingError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Booking is already cancelled", invalid.Reason)
	// The counter must not be incremented a second time.
	assert.Equal(t, 60, flight.AvailableSeats)
}

func TestCancelBooking_TerminalStates(t *testing.T) {
	cases := map[string]string{
		models.BookingStatusCompleted: "Cannot cancel completed booking",
		models.BookingStatusRefunded:  "Cannot cancel refunded booking",
	}
	for status, reason := range cases {
		flight := newTestFlight(60, 100)
		seat := &models.Seat{FlightID: flight.ID, Status: models.SeatStatusOccupied}
		booking := &models.Booking{Status: status}

		err := CancelBooking(booking, seat, flight)

		var invalid *InvalidBookingError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, reason, invalid.Reason)
		assert.Equal(t, models.SeatStatusOccupied, seat.Status)
	}
}

func TestBookingLifecycle_NetAvailability(t *testing.T) {
	flight := newTestFlight(60, 100)
	passenger := &models.Passenger{ID: uuid.New()}
	seat := &models.Seat{ID: uuid.New(), FlightID: flight.ID, SeatNumber: "1A", Price: 300, Status: models.SeatStatusAvailable}

	booking, err := BuildBooking(passenger, flight, seat)
	require.NoError(t, err)
	require.NoError(t, ConfirmBooking(&booking, seat))
	require.NoError(t, CancelBooking(&booking, seat, flight))

	// Reserve a different seat afterwards: one active reservation total.
	other := &models.Seat{ID: uuid.New(), FlightID: flight.ID, SeatNumber: "1B", Status: models.SeatStatusAvailable}
	_, err = BuildBooking(passenger, flight, other)
	require.NoError(t, err)
	assert.Equal(t, 59, flight.AvailableSeats)
}
