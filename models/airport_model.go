package models

import (
	"time"

	"github.com/google/uuid"
)

type Airport struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Code    string    `gorm:"size:3;not null;unique" json:"code"`
	Name    string    `gorm:"size:255;not null" json:"name"`
	City    string    `gorm:"size:100" json:"city"`
	Country string    `gorm:"size:100" json:"country"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
