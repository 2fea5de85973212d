package services

import (
	"testing"

	"github.com/dkimathi/airline_reservation/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlight(totalSeats int, basePrice float64) *models.Flight {
	return &models.Flight{
		ID:             uuid.New(),
		FlightNumber:   "FL100",
		TotalSeats:     totalSeats,
		AvailableSeats: totalSeats,
		BasePrice:      basePrice,
		Status:         models.FlightStatusScheduled,
	}
}

func TestGenerateSeats_SmallCabin(t *testing.T) {
	flight := newTestFlight(12, 100)
	seats := GenerateSeats(flight)

	require.Len(t, seats, 12)
	assert.Equal(t, "1A", seats[0].SeatNumber)
	assert.Equal(t, "2F", seats[11].SeatNumber)
	for _, s := range seats {
		assert.Equal(t, flight.ID, s.FlightID)
		assert.Equal(t, models.SeatClassFirst, s.SeatClass)
		assert.Equal(t, 300.0, s.Price)
		assert.Equal(t, models.SeatStatusAvailable, s.Status)
	}
}

func TestGenerateSeats_ClassBoundaries(t *testing.T) {
	flight := newTestFlight(72, 100)
	seats := GenerateSeats(flight)
	require.Len(t, seats, 72)

	byNumber := make(map[string]models.Seat, len(seats))
	for _, s := range seats {
		byNumber[s.SeatNumber] = s
	}

	assert.Equal(t, models.SeatClassFirst, byNumber["2F"].SeatClass)
	assert.Equal(t, 300.0, byNumber["2F"].Price)
	assert.Equal(t, models.SeatClassBusiness, byNumber["3A"].SeatClass)
	assert.Equal(t, 200.0, byNumber["3A"].Price)
	assert.Equal(t, models.SeatClassBusiness, byNumber["5F"].SeatClass)
	assert.Equal(t, models.SeatClassPremiumEconomy, byNumber["6A"].SeatClass)
	assert.Equal(t, 150.0, byNumber["6A"].Price)
	assert.Equal(t, models.SeatClassPremiumEconomy, byNumber["10F"].SeatClass)
	assert.Equal(t, models.SeatClassEconomy, byNumber["11A"].SeatClass)
	assert.Equal(t, 100.0, byNumber["11A"].Price)
	assert.Equal(t, models.SeatClassEconomy, byNumber["12F"].SeatClass)
}

func TestGenerateSeats_PartialRowDropped(t *testing.T) {
	flight := newTestFlight(10, 100)
	seats := GenerateSeats(flight)
	assert.Len(t, seats, 6)
}

func TestGenerateSeats_FewerThanOneRow(t *testing.T) {
	flight := newTestFlight(5, 100)
	seats := GenerateSeats(flight)
	assert.Empty(t, seats)
}

func TestReserveSeat_Success(t *testing.T) {
	flight := newTestFlight(12, 100)
	seat := &models.Seat{FlightID: flight.ID, SeatNumber: "1A", Status: models.SeatStatusAvailable}

	err := ReserveSeat(seat, flight)

	require.NoError(t, err)
	assert.Equal(t, models.SeatStatusReserved, seat.Status)
	assert.Equal(t, 11, flight.AvailableSeats)
}

func TestReserveSeat_WrongFlight(t *testing.T) {
	flight := newTestFlight(12, 100)
	seat := &models.Seat{FlightID: uuid.New(), SeatNumber: "1A", Status: models.SeatStatusAvailable}

	err := ReserveSeat(seat, flight)

	var invalid *InvalidBookingError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Selected seat does not belong to the chosen flight", invalid.Reason)
	assert.Equal(t, 12, flight.AvailableSeats)
}

func TestReserveSeat_FlightFull(t *testing.T) {
	flight := newTestFlight(12, 100)
	flight.AvailableSeats = 0
	seat := &models.Seat{FlightID: flight.ID, SeatNumber: "1A", Status: models.SeatStatusAvailable}

	err := ReserveSeat(seat, flight)

	var invalid *InvalidBookingError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "No seats available on this flight", invalid.Reason)
	assert.Equal(t, models.SeatStatusAvailable, seat.Status)
}

// A zero counter wins over a stale AVAILABLE seat row: the full-flight error
// is reported even when the individual seat looks free.
func TestReserveSeat_CounterCheckedBeforeSeatStatus(t *testing.T) {
	flight := newTestFlight(12, 100)
	flight.AvailableSeats = 0
	seat := &models.Seat{FlightID: flight.ID, SeatNumber: "1A", Status: models.SeatStatusReserved}

	err := ReserveSeat(seat, flight)

	var invalid *InvalidBookingError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "No seats available on this flight", invalid.Reason)
}

func TestReserveSeat_FlightNotScheduled(t *testing.T) {
	flight := newTestFlight(12, 100)
	flight.Status = models.FlightStatusCancelled
	seat := &models.Seat{FlightID: flight.ID, SeatNumber: "1A", Status: models.SeatStatusAvailable}

	err := ReserveSeat(seat, flight)

	var invalid *InvalidBookingError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Flight is not available for booking. Status: CANCELLED", invalid.Reason)
}

func TestReserveSeat_SeatTaken(t *testing.T) {
	flight := newTestFlight(12, 100)
	seat := &models.Seat{FlightID: flight.ID, SeatNumber: "3C", Status: models.SeatStatusReserved}

	err := ReserveSeat(seat, flight)

	var unavailable *SeatUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Seat 3C is not available", err.Error())
	assert.Equal(t, 12, flight.AvailableSeats)
}

func TestOccupySeat_RequiresReserved(t *testing.T) {
	seat := &models.Seat{SeatNumber: "1A", Status: models.SeatStatusAvailable}

	err := OccupySeat(seat)

	var invalid *InvalidBookingError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.SeatStatusAvailable, seat.Status)

	seat.Status = models.SeatStatusReserved
	require.NoError(t, OccupySeat(seat))
	assert.Equal(t, models.SeatStatusOccupied, seat.Status)
}

func TestReleaseSeat_RestoresCounter(t *testing.T) {
	flight := newTestFlight(12, 100)
	seat := &models.Seat{FlightID: flight.ID, SeatNumber: "1A", Status: models.SeatStatusAvailable}

	require.NoError(t, ReserveSeat(seat, flight))
	ReleaseSeat(seat, flight)

	assert.Equal(t, models.SeatStatusAvailable, seat.Status)
	assert.Equal(t, 12, flight.AvailableSeats)

	// The seat can be taken again after release.
	require.NoError(t, ReserveSeat(seat, flight))
	assert.Equal(t, 11, flight.AvailableSeats)
}
