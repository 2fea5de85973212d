package handlers

import (
	"strings"
	"time"

	"github.com/dkimathi/airline_reservation/database"
	"github.com/dkimathi/airline_reservation/models"
	"github.com/dkimathi/airline_reservation/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UnifiedSearchRequest struct {
	DepartureAirportCode string `json:"departure_airport_code" validate:"required,len=3"`
	ArrivalAirportCode   string `json:"arrival_airport_code" validate:"required,len=3"`
	DepartureDate        string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	IncludeExternal      bool   `json:"include_external"`
}

type ImportExternalFlightRequest struct {
	FlightNumber  string  `json:"flight_number" validate:"required"`
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	Price         float64 `json:"price"`
	DepartureTime *string `json:"departure_time"`
	ArrivalTime   *string `json:"arrival_time"`
}

func GetExternalFlights(c *fiber.Ctx) error {
	return c.JSON(services.FetchAllExternalFlights())
}

func GetExternalFlightsByNumber(c *fiber.Ctx) error {
	return c.JSON(services.FetchExternalFlightsByNumber(c.Params("flightNumber")))
}

func GetExternalFlightByID(c *fiber.Ctx) error {
	return c.JSON(services.FetchExternalFlightByID(c.Params("externalId")))
}

// SearchUnifiedFlights merges bookable internal flights with non-bookable
// external results: internal first, no dedup, no cross-source ranking.
func SearchUnifiedFlights(c *fiber.Ctx) error {
	var req UnifiedSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, _ := time.Parse("2006-01-02", req.DepartureDate)
	internal := searchInternalFlights(req.DepartureAirportCode, req.ArrivalAirportCode, date)

	var external []services.ExternalFlight
	if req.IncludeExternal {
		dep := strings.ToUpper(strings.TrimSpace(req.DepartureAirportCode))
		arr := strings.ToUpper(strings.TrimSpace(req.ArrivalAirportCode))
		external = services.FetchExternalFlightsByRoute(dep, arr)
	}

	return c.JSON(services.MergeUnified(internal, external))
}

// ImportExternalFlight turns an external record into a normal bookable
// internal flight, synthesizing placeholder airports where needed.
func ImportExternalFlight(c *fiber.Ctx) error {
	var req ImportExternalFlightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	external := services.ExternalFlight{
		FlightNumber: req.FlightNumber,
		Airline:      req.Airline,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Price:        req.Price,
	}
	if req.DepartureTime != nil {
		if t, err := time.Parse(time.RFC3339, *req.DepartureTime); err == nil {
			external.DepartureTime = &t
		}
	}
	if req.ArrivalTime != nil {
		if t, err := time.Parse(time.RFC3339, *req.ArrivalTime); err == nil {
			external.ArrivalTime = &t
		}
	}

	plan, err := services.PrepareImport(external, time.Now())
	if err != nil {
		return respondError(c, err)
	}

	var count int64
	database.DB.Model(&models.Flight{}).Where("flight_number = ?", plan.FlightNumber).Count(&count)
	if count > 0 {
		return respondError(c, &services.AlreadyExistsError{Resource: "Flight", Field: "flightNumber", Value: plan.FlightNumber})
	}

	var flight models.Flight
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		dep, err := getOrCreateAirport(tx, plan.DepartureCode)
		if err != nil {
			return err
		}
		arr, err := getOrCreateAirport(tx, plan.ArrivalCode)
		if err != nil {
			return err
		}

		flight = models.Flight{
			FlightNumber:       plan.FlightNumber,
			AirlineName:        plan.AirlineName,
			DepartureAirportID: dep.ID,
			ArrivalAirportID:   arr.ID,
			DepartureTime:      plan.DepartureTime,
			ArrivalTime:        plan.ArrivalTime,
			TotalSeats:         plan.TotalSeats,
			AvailableSeats:     plan.TotalSeats,
			BasePrice:          plan.BasePrice,
			Status:             models.FlightStatusScheduled,
		}
		if err := tx.Create(&flight).Error; err != nil {
			return err
		}

		seats := services.GenerateSeats(&flight)
		if err := tx.Create(&seats).Error; err != nil {
			return err
		}

		flight.DepartureAirport = dep
		flight.ArrivalAirport = arr
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	services.InvalidateFlightCaches(c.Context())
	return c.Status(fiber.StatusCreated).JSON(flight)
}

func getOrCreateAirport(tx *gorm.DB, code string) (models.Airport, error) {
	var airport models.Airport
	err := tx.Where("code = ?", code).First(&airport).Error
	if err == nil {
		return airport, nil
	}
	if err != gorm.ErrRecordNotFound {
		return models.Airport{}, err
	}

	airport = models.Airport{
		Code:    code,
		Name:    "Airport " + code,
		City:    "-",
		Country: "-",
	}
	if err := tx.Create(&airport).Error; err != nil {
		return models.Airport{}, err
	}
	return airport, nil
}
