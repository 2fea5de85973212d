package handlers

import (
	"github.com/dkimathi/airline_reservation/database"
	"github.com/dkimathi/airline_reservation/models"
	"github.com/dkimathi/airline_reservation/notifications"
	"github.com/dkimathi/airline_reservation/services"
	"github.com/dkimathi/airline_reservation/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateBookingRequest struct {
	PassengerID string `json:"passenger_id" validate:"required,uuid"`
	FlightID    string `json:"flight_id" validate:"required,uuid"`
	SeatID      string `json:"seat_id" validate:"required,uuid"`
}

// CreateBooking reserves the seat and persists the PENDING booking in one
// transaction. The seat and flight rows are locked so concurrent requests for
// the same seat serialize; the loser sees the seat as RESERVED and gets a 409.
func CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	passengerID, _ := uuid.Parse(req.PassengerID)
	flightID, _ := uuid.Parse(req.FlightID)
	seatID, _ := uuid.Parse(req.SeatID)

	var booking models.Booking
	var flight models.Flight
	var seat models.Seat
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var passenger models.Passenger
		if err := tx.First(&passenger, "id = ?", passengerID).Error; err != nil {
			return &services.NotFoundError{Resource: "Passenger", Key: passengerID.String()}
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&flight, "id = ?", flightID).Error; err != nil {
			return &services.NotFoundError{Resource: "Flight", Key: flightID.String()}
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&seat, "id = ?", seatID).Error; err != nil {
			return &services.NotFoundError{Resource: "Seat", Key: seatID.String()}
		}

		built, err := services.BuildBooking(&passenger, &flight, &seat)
		if err != nil {
			return err
		}

		if err := tx.Save(&seat).Error; err != nil {
			return err
		}
		if err := tx.Save(&flight).Error; err != nil {
			return err
		}
		booking = built
		return tx.Create(&booking).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	services.InvalidateFlightCaches(c.Context())
	websocket.PublishSeatEvent(websocket.SeatEvent{
		FlightID:       flight.ID,
		SeatNumber:     seat.SeatNumber,
		SeatStatus:     seat.Status,
		BookingStatus:  booking.Status,
		AvailableSeats: flight.AvailableSeats,
	})

	database.DB.Preload("Passenger").Preload("Flight.DepartureAirport").
		Preload("Flight.ArrivalAirport").Preload("Seat").First(&booking, "id = ?", booking.ID)
	return c.Status(fiber.StatusCreated).JSON(booking)
}

func ConfirmBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var booking models.Booking
	var seat models.Seat
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", id).Error; err != nil {
			return &services.NotFoundError{Resource: "Booking", Key: id.String()}
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&seat, "id = ?", booking.SeatID).Error; err != nil {
			return &services.NotFoundError{Resource: "Seat", Key: booking.SeatID.String()}
		}

		if err := services.ConfirmBooking(&booking, &seat); err != nil {
			return err
		}

		if err := tx.Save(&seat).Error; err != nil {
			return err
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	websocket.PublishSeatEvent(websocket.SeatEvent{
		FlightID:      booking.FlightID,
		SeatNumber:    seat.SeatNumber,
		SeatStatus:    seat.Status,
		BookingStatus: booking.Status,
	})

	database.DB.Preload("Passenger").Preload("Flight.DepartureAirport").
		Preload("Flight.ArrivalAirport").Preload("Seat").First(&booking, "id = ?", booking.ID)
	return c.JSON(booking)
}

func CancelBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var booking models.Booking
	var flight models.Flight
	var seat models.Seat
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, "id = ?", id).Error; err != nil {
			return &services.NotFoundError{Resource: "Booking", Key: id.String()}
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&flight, "id = ?", booking.FlightID).Error; err != nil {
			return &services.NotFoundError{Resource: "Flight", Key: booking.FlightID.String()}
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&seat, "id = ?", booking.SeatID).Error; err != nil {
			return &services.NotFoundError{Resource: "Seat", Key: booking.SeatID.String()}
		}

		if err := services.CancelBooking(&booking, &seat, &flight); err != nil {
			return err
		}

		if err := tx.Save(&seat).Error; err != nil {
			return err
		}
		if err := tx.Save(&flight).Error; err != nil {
			return err
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	services.InvalidateFlightCaches(c.Context())
	websocket.PublishSeatEvent(websocket.SeatEvent{
		FlightID:       flight.ID,
		SeatNumber:     seat.SeatNumber,
		SeatStatus:     seat.Status,
		BookingStatus:  booking.Status,
		AvailableSeats: flight.AvailableSeats,
	})

	var passenger models.Passenger
	if database.DB.First(&passenger, "id = ?", booking.PassengerID).Error == nil {
		go notifications.SendEmail(
			passenger.FirstName+" "+passenger.LastName,
			passenger.Email,
			"Booking "+booking.BookingReference+" cancelled",
			"<p>Your booking on flight "+flight.FlightNumber+" has been cancelled.</p>",
		)
	}

	return c.JSON(fiber.Map{"message": "Booking cancelled successfully"})
}

func GetBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var booking models.Booking
	if err := database.DB.Preload("Passenger").Preload("Flight.DepartureAirport").
		Preload("Flight.ArrivalAirport").Preload("Seat").First(&booking, "id = ?", id).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Booking", Key: id.String()})
	}
	return c.JSON(booking)
}

func GetBookingByReference(c *fiber.Ctx) error {
	reference := c.Params("bookingReference")

	var booking models.Booking
	if err := database.DB.Preload("Passenger").Preload("Flight.DepartureAirport").
		Preload("Flight.ArrivalAirport").Preload("Seat").
		Where("booking_reference = ?", reference).First(&booking).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Booking", Key: reference})
	}
	return c.JSON(booking)
}

func GetBookingsByPassenger(c *fiber.Ctx) error {
	passengerID, err := uuid.Parse(c.Params("passengerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid passenger id"})
	}

	var count int64
	database.DB.Model(&models.Passenger{}).Where("id = ?", passengerID).Count(&count)
	if count == 0 {
		return respondError(c, &services.NotFoundError{Resource: "Passenger", Key: passengerID.String()})
	}

	var bookings []models.Booking
	database.DB.Preload("Flight.DepartureAirport").Preload("Flight.ArrivalAirport").Preload("Seat").
		Where("passenger_id = ?", passengerID).Order("created_at desc").Find(&bookings)
	return c.JSON(bookings)
}

func GetAllBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	database.DB.Preload("Passenger").Preload("Flight.DepartureAirport").
		Preload("Flight.ArrivalAirport").Preload("Seat").
		Order("created_at desc").Find(&bookings)
	return c.JSON(bookings)
}
