package services

import (
	"strings"
	"time"

	"github.com/dkimathi/airline_reservation/models"
	"github.com/google/uuid"
)

const (
	SourceInternal = "internal"
	SourceExternal = "external"
)

// UnifiedFlight is the search-display shape covering both internal (bookable)
// and external (non-bookable) flights.
type UnifiedFlight struct {
	Source               string     `json:"source"`
	Bookable             bool       `json:"bookable"`
	InternalFlightID     *uuid.UUID `json:"internal_flight_id"`
	ID                   string     `json:"id"`
	FlightNumber         string     `json:"flight_number"`
	AirlineName          string     `json:"airline_name"`
	DepartureAirportCode string     `json:"departure_airport_code"`
	DepartureAirportName string     `json:"departure_airport_name"`
	ArrivalAirportCode   string     `json:"arrival_airport_code"`
	ArrivalAirportName   string     `json:"arrival_airport_name"`
	DepartureTime        *time.Time `json:"departure_time"`
	ArrivalTime          *time.Time `json:"arrival_time"`
	BasePrice            float64    `json:"base_price"`
	TotalSeats           *int       `json:"total_seats"`
	AvailableSeats       *int       `json:"available_seats"`
}

// MergeUnified concatenates internal results before external ones.
// No dedup, no cross-source ranking.
func MergeUnified(internal []models.Flight, external []ExternalFlight) []UnifiedFlight {
	combined := make([]UnifiedFlight, 0, len(internal)+len(external))
	for _, f := range internal {
		combined = append(combined, toUnifiedInternal(f))
	}
	for _, f := range external {
		combined = append(combined, toUnifiedExternal(f))
	}
	return combined
}

func toUnifiedInternal(f models.Flight) UnifiedFlight {
	id := f.ID
	dep := f.DepartureTime
	arr := f.ArrivalTime
	total := f.TotalSeats
	available := f.AvailableSeats
	return UnifiedFlight{
		Source:               SourceInternal,
		Bookable:             true,
		InternalFlightID:     &id,
		ID:                   f.ID.String(),
		FlightNumber:         f.FlightNumber,
		AirlineName:          f.AirlineName,
		DepartureAirportCode: f.DepartureAirport.Code,
		DepartureAirportName: f.DepartureAirport.Name,
		ArrivalAirportCode:   f.ArrivalAirport.Code,
		ArrivalAirportName:   f.ArrivalAirport.Name,
		DepartureTime:        &dep,
		ArrivalTime:          &arr,
		BasePrice:            f.BasePrice,
		TotalSeats:           &total,
		AvailableSeats:       &available,
	}
}

func toUnifiedExternal(f ExternalFlight) UnifiedFlight {
	return UnifiedFlight{
		Source:               SourceExternal,
		Bookable:             false,
		InternalFlightID:     nil,
		ID:                   f.ID,
		FlightNumber:         f.FlightNumber,
		AirlineName:          f.Airline,
		DepartureAirportCode: f.Origin,
		DepartureAirportName: f.Origin,
		ArrivalAirportCode:   f.Destination,
		ArrivalAirportName:   f.Destination,
		DepartureTime:        f.DepartureTime,
		ArrivalTime:          f.ArrivalTime,
		BasePrice:            f.Price,
	}
}

// ImportPlan is a normalized external flight ready to be created internally.
type ImportPlan struct {
	FlightNumber  string
	AirlineName   string
	DepartureCode string
	ArrivalCode   string
	DepartureTime time.Time
	ArrivalTime   time.Time
	BasePrice     float64
	TotalSeats    int
}

// PrepareImport validates and normalizes an external record for import.
// Missing fields get deterministic defaults: today at 10:00 / +2h for times,
// 199.99 for a missing or non-positive price, 120 seats.
func PrepareImport(external ExternalFlight, now time.Time) (ImportPlan, error) {
	if strings.TrimSpace(external.FlightNumber) == "" {
		return ImportPlan{}, &InvalidBookingError{Reason: "External flight number is required"}
	}

	depCode := normalizeImportCode(external.Origin, "XXX")
	arrCode := normalizeImportCode(external.Destination, "YYY")
	if depCode == arrCode {
		return ImportPlan{}, &InvalidBookingError{Reason: "Departure and arrival airports cannot be the same"}
	}

	depTime := now.Truncate(24 * time.Hour).Add(10 * time.Hour)
	if external.DepartureTime != nil {
		depTime = *external.DepartureTime
	}
	arrTime := depTime.Add(2 * time.Hour)
	if external.ArrivalTime != nil {
		arrTime = *external.ArrivalTime
	}
	if !arrTime.After(depTime) {
		arrTime = depTime.Add(2 * time.Hour)
	}

	price := external.Price
	if price <= 0 {
		price = 199.99
	}

	airline := external.Airline
	if airline == "" {
		airline = "Unknown"
	}

	return ImportPlan{
		FlightNumber:  strings.TrimSpace(external.FlightNumber),
		AirlineName:   airline,
		DepartureCode: depCode,
		ArrivalCode:   arrCode,
		DepartureTime: depTime,
		ArrivalTime:   arrTime,
		BasePrice:     price,
		TotalSeats:    120,
	}, nil
}

func normalizeImportCode(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fallback
	}
	return code
}
