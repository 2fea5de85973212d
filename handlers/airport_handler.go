package handlers

import (
	"strings"

	"github.com/dkimathi/airline_reservation/database"
	"github.com/dkimathi/airline_reservation/models"
	"github.com/dkimathi/airline_reservation/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AirportRequest struct {
	Code    string `json:"code" validate:"required,len=3,alpha"`
	Name    string `json:"name" validate:"required"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
}

func CreateAirport(c *fiber.Ctx) error {
	var req AirportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	code := strings.ToUpper(req.Code)

	var count int64
	database.DB.Model(&models.Airport{}).Where("code = ?", code).Count(&count)
	if count > 0 {
		return respondError(c, &services.AlreadyExistsError{Resource: "Airport", Field: "code", Value: code})
	}

	airport := models.Airport{
		Code:    code,
		Name:    req.Name,
		City:    req.City,
		Country: req.Country,
	}
	if err := database.DB.Create(&airport).Error; err != nil {
		return respondError(c, err)
	}

	services.InvalidateFlightCaches(c.Context())
	return c.Status(fiber.StatusCreated).JSON(airport)
}

func GetAirport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid airport id"})
	}

	var airport models.Airport
	if err := database.DB.First(&airport, "id = ?", id).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Airport", Key: id.String()})
	}
	return c.JSON(airport)
}

func GetAirportByCode(c *fiber.Ctx) error {
	code := strings.ToUpper(c.Params("code"))

	var airport models.Airport
	if err := database.DB.Where("code = ?", code).First(&airport).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Airport", Key: code})
	}
	return c.JSON(airport)
}

func GetAllAirports(c *fiber.Ctx) error {
	var airports []models.Airport
	database.DB.Order("code").Find(&airports)
	return c.JSON(airports)
}

func GetAirportsByCity(c *fiber.Ctx) error {
	var airports []models.Airport
	database.DB.Where("city = ?", c.Params("city")).Find(&airports)
	return c.JSON(airports)
}

func UpdateAirport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid airport id"})
	}

	var req AirportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var airport models.Airport
	if err := database.DB.First(&airport, "id = ?", id).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Airport", Key: id.String()})
	}

	code := strings.ToUpper(req.Code)
	if code != airport.Code {
		var count int64
		database.DB.Model(&models.Airport{}).Where("code = ?", code).Count(&count)
		if count > 0 {
			return respondError(c, &services.AlreadyExistsError{Resource: "Airport", Field: "code", Value: code})
		}
	}

	airport.Code = code
	airport.Name = req.Name
	airport.City = req.City
	airport.Country = req.Country
	if err := database.DB.Save(&airport).Error; err != nil {
		return respondError(c, err)
	}

	services.InvalidateFlightCaches(c.Context())
	return c.JSON(airport)
}

func DeleteAirport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid airport id"})
	}

	result := database.DB.Delete(&models.Airport{}, "id = ?", id)
	if result.Error != nil {
		return respondError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return respondError(c, &services.NotFoundError{Resource: "Airport", Key: id.String()})
	}

	services.InvalidateFlightCaches(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
