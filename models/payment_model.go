package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusSuccess  = "SUCCESS"
	PaymentStatusFailed   = "FAILED"
	PaymentStatusRefunded = "REFUNDED"
)

var PaymentMethods = []string{"CREDIT_CARD", "DEBIT_CARD", "NET_BANKING", "UPI", "WALLET"}

// At most one payment exists per booking, enforced by the unique booking_id.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID     uuid.UUID `gorm:"type:uuid;not null;unique" json:"booking_id"`
	TransactionID string    `gorm:"size:20;not null;unique" json:"transaction_id"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentMethod string    `gorm:"size:20;not null" json:"payment_method"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	PaymentDate   time.Time `gorm:"not null" json:"payment_date"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"booking,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
