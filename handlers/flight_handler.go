package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/dkimathi/airline_reservation/database"
	"github.com/dkimathi/airline_reservation/models"
	"github.com/dkimathi/airline_reservation/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlightRequest struct {
	FlightNumber       string  `json:"flight_number" validate:"required"`
	AirlineName        string  `json:"airline_name" validate:"required"`
	DepartureAirportID string  `json:"departure_airport_id" validate:"required,uuid"`
	ArrivalAirportID   string  `json:"arrival_airport_id" validate:"required,uuid"`
	DepartureTime      string  `json:"departure_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	ArrivalTime        string  `json:"arrival_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	TotalSeats         int     `json:"total_seats" validate:"required,min=1"`
	BasePrice          float64 `json:"base_price" validate:"required,gt=0"`
}

type FlightSearchRequest struct {
	DepartureAirportCode string `json:"departure_airport_code" validate:"required,len=3"`
	ArrivalAirportCode   string `json:"arrival_airport_code" validate:"required,len=3"`
	DepartureDate        string `json:"departure_date" validate:"required,datetime=2006-01-02"`
}

var flightStatuses = []string{
	models.FlightStatusScheduled,
	models.FlightStatusDelayed,
	models.FlightStatusCancelled,
	models.FlightStatusBoarding,
	models.FlightStatusDeparted,
	models.FlightStatusArrived,
}

func CreateFlight(c *fiber.Ctx) error {
	var req FlightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	database.DB.Model(&models.Flight{}).Where("flight_number = ?", req.FlightNumber).Count(&count)
	if count > 0 {
		return respondError(c, &services.AlreadyExistsError{Resource: "Flight", Field: "flightNumber", Value: req.FlightNumber})
	}

	depAirportID, _ := uuid.Parse(req.DepartureAirportID)
	arrAirportID, _ := uuid.Parse(req.ArrivalAirportID)

	var depAirport, arrAirport models.Airport
	if err := database.DB.First(&depAirport, "id = ?", depAirportID).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Airport", Key: depAirportID.String()})
	}
	if err := database.DB.First(&arrAirport, "id = ?", arrAirportID).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Airport", Key: arrAirportID.String()})
	}
	if depAirport.ID == arrAirport.ID {
		return respondError(c, &services.InvalidBookingError{Reason: "Departure and arrival airports cannot be the same"})
	}

	depTime, _ := time.Parse(time.RFC3339, req.DepartureTime)
	arrTime, _ := time.Parse(time.RFC3339, req.ArrivalTime)
	if !arrTime.After(depTime) {
		return respondError(c, &services.InvalidBookingError{Reason: "Arrival time must be after departure time"})
	}

	flight := models.Flight{
		FlightNumber:       req.FlightNumber,
		AirlineName:        req.AirlineName,
		DepartureAirportID: depAirport.ID,
		ArrivalAirportID:   arrAirport.ID,
		DepartureTime:      depTime,
		ArrivalTime:        arrTime,
		TotalSeats:         req.TotalSeats,
		AvailableSeats:     req.TotalSeats,
		BasePrice:          req.BasePrice,
		Status:             models.FlightStatusScheduled,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&flight).Error; err != nil {
			return err
		}
		seats := services.GenerateSeats(&flight)
		if len(seats) == 0 {
			return nil
		}
		return tx.Create(&seats).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	services.InvalidateFlightCaches(c.Context())

	flight.DepartureAirport = depAirport
	flight.ArrivalAirport = arrAirport
	return c.Status(fiber.StatusCreated).JSON(flight)
}

func GetFlight(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid flight id"})
	}

	var flight models.Flight
	if err := database.DB.Preload("DepartureAirport").Preload("ArrivalAirport").First(&flight, "id = ?", id).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Flight", Key: id.String()})
	}
	return c.JSON(flight)
}

func GetFlightByNumber(c *fiber.Ctx) error {
	number := c.Params("flightNumber")

	var flight models.Flight
	if err := database.DB.Preload("DepartureAirport").Preload("ArrivalAirport").
		Where("flight_number = ?", number).First(&flight).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Flight", Key: number})
	}
	return c.JSON(flight)
}

func GetAllFlights(c *fiber.Ctx) error {
	var flights []models.Flight
	database.DB.Preload("DepartureAirport").Preload("ArrivalAirport").
		Order("departure_time").Find(&flights)
	return c.JSON(flights)
}

// searchInternalFlights finds bookable SCHEDULED flights on the route within
// the 24h window of the given date. Shared by plain and unified search.
func searchInternalFlights(depCode, arrCode string, date time.Time) []models.Flight {
	depCode = strings.ToUpper(depCode)
	arrCode = strings.ToUpper(arrCode)
	day := date.Format("2006-01-02")

	var flights []models.Flight
	ctx := context.Background()
	if services.GetCachedFlightSearch(ctx, depCode, arrCode, day, &flights) {
		return flights
	}

	startOfDay := date
	endOfDay := date.Add(24 * time.Hour)

	database.DB.Preload("DepartureAirport").Preload("ArrivalAirport").
		Joins("JOIN airports dep ON dep.id = flights.departure_airport_id").
		Joins("JOIN airports arr ON arr.id = flights.arrival_airport_id").
		Where("dep.code = ? AND arr.code = ?", depCode, arrCode).
		Where("flights.departure_time >= ? AND flights.departure_time < ?", startOfDay, endOfDay).
		Where("flights.available_seats > 0 AND flights.status = ?", models.FlightStatusScheduled).
		Order("flights.departure_time").
		Find(&flights)

	services.SetCachedFlightSearch(ctx, depCode, arrCode, day, flights)
	return flights
}

func SearchFlights(c *fiber.Ctx) error {
	var req FlightSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, _ := time.Parse("2006-01-02", req.DepartureDate)
	flights := searchInternalFlights(req.DepartureAirportCode, req.ArrivalAirportCode, date)
	return c.JSON(flights)
}

func UpdateFlightStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid flight id"})
	}

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	status := strings.ToUpper(req.Status)
	valid := false
	for _, s := range flightStatuses {
		if s == status {
			valid = true
			break
		}
	}
	if !valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid flight status: " + req.Status})
	}

	var flight models.Flight
	if err := database.DB.First(&flight, "id = ?", id).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Flight", Key: id.String()})
	}

	flight.Status = status
	if err := database.DB.Save(&flight).Error; err != nil {
		return respondError(c, err)
	}

	services.InvalidateFlightCaches(c.Context())
	return c.JSON(flight)
}

func DeleteFlight(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid flight id"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Flight{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return &services.NotFoundError{Resource: "Flight", Key: id.String()}
		}
		return tx.Delete(&models.Seat{}, "flight_id = ?", id).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	services.InvalidateFlightCaches(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
