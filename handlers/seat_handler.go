package handlers

import (
	"github.com/dkimathi/airline_reservation/database"
	"github.com/dkimathi/airline_reservation/models"
	"github.com/dkimathi/airline_reservation/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetSeatsByFlight(c *fiber.Ctx) error {
	flightID, err := uuid.Parse(c.Params("flightId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid flight id"})
	}

	var count int64
	database.DB.Model(&models.Flight{}).Where("id = ?", flightID).Count(&count)
	if count == 0 {
		return respondError(c, &services.NotFoundError{Resource: "Flight", Key: flightID.String()})
	}

	var seats []models.Seat
	database.DB.Where("flight_id = ?", flightID).Order("seat_number").Find(&seats)
	return c.JSON(seats)
}

func GetAvailableSeatsByFlight(c *fiber.Ctx) error {
	flightID, err := uuid.Parse(c.Params("flightId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid flight id"})
	}

	var count int64
	database.DB.Model(&models.Flight{}).Where("id = ?", flightID).Count(&count)
	if count == 0 {
		return respondError(c, &services.NotFoundError{Resource: "Flight", Key: flightID.String()})
	}

	var seats []models.Seat
	database.DB.Where("flight_id = ? AND status = ?", flightID, models.SeatStatusAvailable).
		Order("seat_number").Find(&seats)
	return c.JSON(seats)
}

func GetSeat(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid seat id"})
	}

	var seat models.Seat
	if err := database.DB.First(&seat, "id = ?", id).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Seat", Key: id.String()})
	}
	return c.JSON(seat)
}
