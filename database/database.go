package database

import (
	"fmt"
	"log"
	"time"

	config "github.com/dkimathi/airline_reservation/configs"
	"github.com/dkimathi/airline_reservation/models"
	"github.com/dkimathi/airline_reservation/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Airport{},
		&models.Passenger{},
		&models.Flight{},
		&models.Seat{},
		&models.Booking{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}

	admin := models.User{
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedSampleData populates demo airports, passengers and flights when
// SEED_SAMPLE_DATA=true and the database is empty.
func SeedSampleData() {
	if config.Config("SEED_SAMPLE_DATA") != "true" {
		return
	}

	var count int64
	if err := DB.Model(&models.Airport{}).Count(&count).Error; err != nil {
		log.Printf("🔥 Failed to check for existing data: %v", err)
		return
	}
	if count > 0 {
		log.Println("Database already contains data. Skipping sample seed.")
		return
	}

	airports := []models.Airport{
		{Code: "DEL", Name: "Indira Gandhi International Airport", City: "New Delhi", Country: "India"},
		{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India"},
		{Code: "BLR", Name: "Kempegowda International Airport", City: "Bangalore", Country: "India"},
		{Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA"},
		{Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "USA"},
		{Code: "LHR", Name: "London Heathrow Airport", City: "London", Country: "UK"},
		{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE"},
	}

	passengers := []models.Passenger{
		{FirstName: "Rajesh", LastName: "Kumar", Email: "rajesh.kumar@email.com", PhoneNumber: "9876543210", DateOfBirth: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC), PassportNumber: "A1234567", Nationality: "India"},
		{FirstName: "Priya", LastName: "Sharma", Email: "priya.sharma@email.com", PhoneNumber: "9876543211", DateOfBirth: time.Date(1992, 8, 22, 0, 0, 0, 0, time.UTC), PassportNumber: "A1234568", Nationality: "India"},
		{FirstName: "Amit", LastName: "Patel", Email: "amit.patel@email.com", PhoneNumber: "9876543212", DateOfBirth: time.Date(1988, 3, 10, 0, 0, 0, 0, time.UTC), PassportNumber: "A1234569", Nationality: "India"},
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&airports).Error; err != nil {
			return err
		}
		if err := tx.Create(&passengers).Error; err != nil {
			return err
		}

		byCode := make(map[string]models.Airport, len(airports))
		for _, a := range airports {
			byCode[a.Code] = a
		}

		tomorrow := time.Now().Truncate(24 * time.Hour).Add(24 * time.Hour)
		sample := []models.Flight{
			{FlightNumber: "AI101", AirlineName: "Air India", DepartureAirportID: byCode["DEL"].ID, ArrivalAirportID: byCode["BOM"].ID, DepartureTime: tomorrow.Add(6 * time.Hour), ArrivalTime: tomorrow.Add(8 * time.Hour), TotalSeats: 120, BasePrice: 89.99},
			{FlightNumber: "AA200", AirlineName: "American Airlines", DepartureAirportID: byCode["JFK"].ID, ArrivalAirportID: byCode["LAX"].ID, DepartureTime: tomorrow.Add(9 * time.Hour), ArrivalTime: tomorrow.Add(15 * time.Hour), TotalSeats: 180, BasePrice: 199.99},
			{FlightNumber: "EK502", AirlineName: "Emirates", DepartureAirportID: byCode["LHR"].ID, ArrivalAirportID: byCode["DXB"].ID, DepartureTime: tomorrow.Add(11 * time.Hour), ArrivalTime: tomorrow.Add(18 * time.Hour), TotalSeats: 240, BasePrice: 299.99},
		}

		seatCount := 0
		for i := range sample {
			sample[i].AvailableSeats = sample[i].TotalSeats
			sample[i].Status = models.FlightStatusScheduled
			if err := tx.Create(&sample[i]).Error; err != nil {
				return err
			}
			seats := services.GenerateSeats(&sample[i])
			if err := tx.Create(&seats).Error; err != nil {
				return err
			}
			seatCount += len(seats)
		}

		log.Printf("✅ Seeded %d airports, %d passengers, %d flights, %d seats", len(airports), len(passengers), len(sample), seatCount)
		return nil
	})
	if err != nil {
		log.Printf("🔥 Failed to seed sample data: %v", err)
	}
}
