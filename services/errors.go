package services

import "fmt"

// NotFoundError signals that a referenced resource does not exist.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// AlreadyExistsError signals a duplicate unique key on create.
type AlreadyExistsError struct {
	Resource string
	Field    string
	Value    string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists with %s: %s", e.Resource, e.Field, e.Value)
}

// InvalidBookingError covers business-rule violations that are neither
// "not found" nor seat-specific.
type InvalidBookingError struct {
	Reason string
}

func (e *InvalidBookingError) Error() string {
	return e.Reason
}

// SeatUnavailableError signals that a seat exists but is not AVAILABLE at
// reservation time.
type SeatUnavailableError struct {
	SeatNumber string
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("Seat %s is not available", e.SeatNumber)
}

// PaymentFailedError signals a declined payment.
type PaymentFailedError struct {
	Reason string
}

func (e *PaymentFailedError) Error() string {
	return e.Reason
}
