package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusRefunded  = "REFUNDED"
)

// A booking owns exactly one seat for its lifetime; the seat reference never
// changes after creation.
type Booking struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingReference string    `gorm:"size:10;not null;unique" json:"booking_reference"`
	PassengerID      uuid.UUID `gorm:"type:uuid;not null" json:"passenger_id"`
	FlightID         uuid.UUID `gorm:"type:uuid;not null" json:"flight_id"`
	SeatID           uuid.UUID `gorm:"type:uuid;not null;unique" json:"seat_id"`
	Status           string    `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	TotalPrice       float64   `gorm:"type:numeric(10,2);not null" json:"total_price"`

	Passenger Passenger `gorm:"foreignkey:PassengerID" json:"passenger,omitempty"`
	Flight    Flight    `gorm:"foreignkey:FlightID" json:"flight,omitempty"`
	Seat      Seat      `gorm:"foreignkey:SeatID" json:"seat,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
