package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SeatStatusAvailable = "AVAILABLE"
	SeatStatusReserved  = "RESERVED"
	SeatStatusOccupied  = "OCCUPIED"
	SeatStatusBlocked   = "BLOCKED"
)

const (
	SeatClassFirst          = "FIRST_CLASS"
	SeatClassBusiness       = "BUSINESS"
	SeatClassPremiumEconomy = "PREMIUM_ECONOMY"
	SeatClassEconomy        = "ECONOMY"
)

type Seat struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FlightID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_flight_seat_number" json:"flight_id"`
	SeatNumber string    `gorm:"size:5;not null;uniqueIndex:idx_flight_seat_number" json:"seat_number"`
	SeatClass  string    `gorm:"size:20;not null" json:"seat_class"`
	Price      float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Status     string    `gorm:"size:20;not null;default:'AVAILABLE'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
