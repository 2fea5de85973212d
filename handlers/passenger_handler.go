package handlers

import (
	"time"

	"github.com/dkimathi/airline_reservation/database"
	"github.com/dkimathi/airline_reservation/models"
	"github.com/dkimathi/airline_reservation/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type PassengerRequest struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phone_number" validate:"required"`
	DateOfBirth    string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	PassportNumber string `json:"passport_number" validate:"required"`
	Nationality    string `json:"nationality" validate:"required"`
}

func CreatePassenger(c *fiber.Ctx) error {
	var req PassengerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)
	if !dob.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date of birth must be in the past"})
	}

	var count int64
	database.DB.Model(&models.Passenger{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		return respondError(c, &services.AlreadyExistsError{Resource: "Passenger", Field: "email", Value: req.Email})
	}
	database.DB.Model(&models.Passenger{}).Where("passport_number = ?", req.PassportNumber).Count(&count)
	if count > 0 {
		return respondError(c, &services.AlreadyExistsError{Resource: "Passenger", Field: "passportNumber", Value: req.PassportNumber})
	}

	passenger := models.Passenger{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		DateOfBirth:    dob,
		PassportNumber: req.PassportNumber,
		Nationality:    req.Nationality,
	}
	if err := database.DB.Create(&passenger).Error; err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(passenger)
}

func GetPassenger(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid passenger id"})
	}

	var passenger models.Passenger
	if err := database.DB.First(&passenger, "id = ?", id).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Passenger", Key: id.String()})
	}
	return c.JSON(passenger)
}

func GetPassengerByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var passenger models.Passenger
	if err := database.DB.Where("email = ?", email).First(&passenger).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Passenger", Key: email})
	}
	return c.JSON(passenger)
}

func GetAllPassengers(c *fiber.Ctx) error {
	var passengers []models.Passenger
	database.DB.Order("created_at desc").Find(&passengers)
	return c.JSON(passengers)
}

func UpdatePassenger(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid passenger id"})
	}

	var req PassengerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var passenger models.Passenger
	if err := database.DB.First(&passenger, "id = ?", id).Error; err != nil {
		return respondError(c, &services.NotFoundError{Resource: "Passenger", Key: id.String()})
	}

	if req.Email != passenger.Email {
		var count int64
		database.DB.Model(&models.Passenger{}).Where("email = ?", req.Email).Count(&count)
		if count > 0 {
			return respondError(c, &services.AlreadyExistsError{Resource: "Passenger", Field: "email", Value: req.Email})
		}
	}

	dob, _ := time.Parse("2006-01-02", req.DateOfBirth)
	if !dob.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date of birth must be in the past"})
	}

	passenger.FirstName = req.FirstName
	passenger.LastName = req.LastName
	passenger.Email = req.Email
	passenger.PhoneNumber = req.PhoneNumber
	passenger.DateOfBirth = dob
	passenger.PassportNumber = req.PassportNumber
	passenger.Nationality = req.Nationality
	if err := database.DB.Save(&passenger).Error; err != nil {
		return respondError(c, err)
	}

	return c.JSON(passenger)
}

func DeletePassenger(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid passenger id"})
	}

	result := database.DB.Delete(&models.Passenger{}, "id = ?", id)
	if result.Error != nil {
		return respondError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return respondError(c, &services.NotFoundError{Resource: "Passenger", Key: id.String()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
