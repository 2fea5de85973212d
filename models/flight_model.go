package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	FlightStatusScheduled = "SCHEDULED"
	FlightStatusDelayed   = "DELAYED"
	FlightStatusCancelled = "CANCELLED"
	FlightStatusBoarding  = "BOARDING"
	FlightStatusDeparted  = "DEPARTED"
	FlightStatusArrived   = "ARRIVED"
)

// Flight references its airports by id; associations are loaded explicitly
// with Preload rather than through back-populated collections.
type Flight struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FlightNumber       string    `gorm:"size:10;not null;unique" json:"flight_number"`
	AirlineName        string    `gorm:"size:100;not null" json:"airline_name"`
	DepartureAirportID uuid.UUID `gorm:"type:uuid;not null" json:"departure_airport_id"`
	ArrivalAirportID   uuid.UUID `gorm:"type:uuid;not null" json:"arrival_airport_id"`
	DepartureTime      time.Time `gorm:"not null" json:"departure_time"`
	ArrivalTime        time.Time `gorm:"not null" json:"arrival_time"`
	TotalSeats         int       `gorm:"not null" json:"total_seats"`
	AvailableSeats     int       `gorm:"not null" json:"available_seats"`
	BasePrice          float64   `gorm:"type:numeric(10,2);not null" json:"base_price"`
	Status             string    `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`

	DepartureAirport Airport `gorm:"foreignkey:DepartureAirportID" json:"departure_airport,omitempty"`
	ArrivalAirport   Airport `gorm:"foreignkey:ArrivalAirportID" json:"arrival_airport,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
