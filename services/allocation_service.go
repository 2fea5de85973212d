package services

import (
	"fmt"

	"github.com/dkimathi/airline_reservation/models"
)

const seatsPerRow = 6 // letters A-F

// GenerateSeats builds the full seat map for a freshly created flight.
// Seats are generated once, deterministically from TotalSeats: only complete
// rows are produced, so the seat count is 6*floor(TotalSeats/6).
func GenerateSeats(flight *models.Flight) []models.Seat {
	rows := flight.TotalSeats / seatsPerRow
	seats := make([]models.Seat, 0, rows*seatsPerRow)

	for row := 1; row <= rows; row++ {
		class, price := seatClassForRow(row, flight.BasePrice)
		for letter := 0; letter < seatsPerRow; letter++ {
			seats = append(seats, models.Seat{
				FlightID:   flight.ID,
				SeatNumber: fmt.Sprintf("%d%c", row, 'A'+letter),
				SeatClass:  class,
				Price:      price,
				Status:     models.SeatStatusAvailable,
			})
		}
	}

	return seats
}

func seatClassForRow(row int, basePrice float64) (string, float64) {
	switch {
	case row <= 2:
		return models.SeatClassFirst, basePrice * 3
	case row <= 5:
		return models.SeatClassBusiness, basePrice * 2
	case row <= 10:
		return models.SeatClassPremiumEconomy, basePrice * 1.5
	default:
		return models.SeatClassEconomy, basePrice
	}
}

// ReserveSeat transitions a seat to RESERVED and decrements the flight
// counter. Both rows must be locked by the caller's transaction so a losing
// concurrent reservation deterministically observes the seat as taken.
// The counter check deliberately precedes the seat-status check.
func ReserveSeat(seat *models.Seat, flight *models.Flight) error {
	if seat.FlightID != flight.ID {
		return &InvalidBookingError{Reason: "Selected seat does not belong to the chosen flight"}
	}
	if flight.AvailableSeats <= 0 {
		return &InvalidBookingError{Reason: "No seats available on this flight"}
	}
	if flight.Status != models.FlightStatusScheduled {
		return &InvalidBookingError{Reason: "Flight is not available for booking. Status: " + flight.Status}
	}
	if seat.Status != models.SeatStatusAvailable {
		return &SeatUnavailableError{SeatNumber: seat.SeatNumber}
	}

	seat.Status = models.SeatStatusReserved
	flight.AvailableSeats--
	return nil
}

// OccupySeat marks a reserved seat as occupied. The seat was already counted
// as unavailable at reservation time, so the flight counter is untouched.
func OccupySeat(seat *models.Seat) error {
	if seat.Status != models.SeatStatusReserved {
		return &InvalidBookingError{Reason: "Seat " + seat.SeatNumber + " is not reserved"}
	}
	seat.Status = models.SeatStatusOccupied
	return nil
}

// ReleaseSeat frees a seat and returns it to the flight counter. Called once
// per active booking, from cancellation only.
func ReleaseSeat(seat *models.Seat, flight *models.Flight) {
	seat.Status = models.SeatStatusAvailable
	flight.AvailableSeats++
}
