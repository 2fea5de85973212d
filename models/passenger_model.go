package models

import (
	"time"

	"github.com/google/uuid"
)

type Passenger struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FirstName      string    `gorm:"size:100;not null" json:"first_name"`
	LastName       string    `gorm:"size:100;not null" json:"last_name"`
	Email          string    `gorm:"size:255;not null;unique" json:"email"`
	PhoneNumber    string    `gorm:"size:20" json:"phone_number"`
	DateOfBirth    time.Time `gorm:"not null" json:"date_of_birth"`
	PassportNumber string    `gorm:"size:20;not null;unique" json:"passport_number"`
	Nationality    string    `gorm:"size:100" json:"nationality"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
