package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateBookingReference returns a human-shareable reference like "BK1A2B3C4D".
func GenerateBookingReference() string {
	return "BK" + strings.ToUpper(uuid.NewString()[:8])
}

// GenerateTransactionID returns a payment transaction id like "TXN1A2B3C4D5E6F".
func GenerateTransactionID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TXN" + strings.ToUpper(raw[:12])
}
