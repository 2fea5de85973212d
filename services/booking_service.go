package services

import (
	"github.com/dkimathi/airline_reservation/models"
	"github.com/dkimathi/airline_reservation/utils"
)

// BuildBooking reserves the seat and assembles a PENDING booking for it.
// The caller persists the mutated seat, flight and booking in one transaction.
func BuildBooking(passenger *models.Passenger, flight *models.Flight, seat *models.Seat) (models.Booking, error) {
	if err := ReserveSeat(seat, flight); err != nil {
		return models.Booking{}, err
	}

	return models.Booking{
		BookingReference: utils.GenerateBookingReference(),
		PassengerID:      passenger.ID,
		FlightID:         flight.ID,
		SeatID:           seat.ID,
		Status:           models.BookingStatusPending,
		TotalPrice:       flight.BasePrice + seat.Price,
	}, nil
}

// ConfirmBooking moves a pending booking to CONFIRMED and occupies its seat.
func ConfirmBooking(booking *models.Booking, seat *models.Seat) error {
	if booking.Status != models.BookingStatusPending {
		return &InvalidBookingError{Reason: "Only pending bookings can be confirmed"}
	}
	if err := OccupySeat(seat); err != nil {
		return err
	}
	booking.Status = models.BookingStatusConfirmed
	return nil
}

// CancelBooking frees the booking's seat and increments the flight counter.
// Cancellation is not idempotent: CANCELLED, COMPLETED and REFUNDED are
// terminal states with no transition out.
func CancelBooking(booking *models.Booking, seat *models.Seat, flight *models.Flight) error {
	switch booking.Status {
	case models.BookingStatusCancelled:
		return &InvalidBookingError{Reason: "Booking is already cancelled"}
	case models.BookingStatusCompleted:
		return &InvalidBookingError{Reason: "Cannot cancel completed booking"}
	case models.BookingStatusRefunded:
		return &InvalidBookingError{Reason: "Cannot cancel refunded booking"}
	}

	ReleaseSeat(seat, flight)
	booking.Status = models.BookingStatusCancelled
	return nil
}
