package services

import (
	"testing"
	"time"

	"github.com/dkimathi/airline_reservation/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeUnified_InternalFirst(t *testing.T) {
	dep := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	arr := dep.Add(5 * time.Hour)
	internal := []models.Flight{{
		ID:               uuid.New(),
		FlightNumber:     "FL100",
		AirlineName:      "Acme Air",
		DepartureAirport: models.Airport{Code: "JFK", Name: "John F. Kennedy International"},
		ArrivalAirport:   models.Airport{Code: "LAX", Name: "Los Angeles International"},
		DepartureTime:    dep,
		ArrivalTime:      arr,
		TotalSeats:       120,
		AvailableSeats:   80,
		BasePrice:        250,
	}}
	external := []ExternalFlight{{
		ID:           "ext-1",
		FlightNumber: "AA101",
		Airline:      "American Airlines",
		Origin:       "JFK",
		Destination:  "LAX",
		Price:        299.99,
	}}

	merged := MergeUnified(internal, external)

	require.Len(t, merged, 2)

	first := merged[0]
	assert.Equal(t, SourceInternal, first.Source)
	assert.True(t, first.Bookable)
	require.NotNil(t, first.InternalFlightID)
	assert.Equal(t, internal[0].ID, *first.InternalFlightID)
	assert.Equal(t, "JFK", first.DepartureAirportCode)
	assert.Equal(t, "John F. Kennedy International", first.DepartureAirportName)
	require.NotNil(t, first.AvailableSeats)
	assert.Equal(t, 80, *first.AvailableSeats)

	second := merged[1]
	assert.Equal(t, SourceExternal, second.Source)
	assert.False(t, second.Bookable)
	assert.Nil(t, second.InternalFlightID)
	assert.Equal(t, "ext-1", second.ID)
	assert.Equal(t, "JFK", second.DepartureAirportName)
	assert.Nil(t, second.TotalSeats)
}

func TestMergeUnified_EmptyInputs(t *testing.T) {
	merged := MergeUnified(nil, nil)
	assert.Empty(t, merged)
	assert.NotNil(t, merged)
}

func TestPrepareImport_FullRecord(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)
	dep := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)
	arr := dep.Add(6 * time.Hour)

	plan, err := PrepareImport(ExternalFlight{
		FlightNumber:  " BA501 ",
		Airline:       "British Airways",
		Origin:        "lhr",
		Destination:   "JFK",
		Price:         599.99,
		DepartureTime: &dep,
		ArrivalTime:   &arr,
	}, now)

	require.NoError(t, err)
	assert.Equal(t, "BA501", plan.FlightNumber)
	assert.Equal(t, "British Airways", plan.AirlineName)
	assert.Equal(t, "LHR", plan.DepartureCode)
	assert.Equal(t, "JFK", plan.ArrivalCode)
	assert.Equal(t, dep, plan.DepartureTime)
	assert.Equal(t, arr, plan.ArrivalTime)
	assert.Equal(t, 599.99, plan.BasePrice)
	assert.Equal(t, 120, plan.TotalSeats)
}

func TestPrepareImport_Defaults(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)

	plan, err := PrepareImport(ExternalFlight{FlightNumber: "ZZ999"}, now)

	require.NoError(t, err)
	assert.Equal(t, "XXX", plan.DepartureCode)
	assert.Equal(t, "YYY", plan.ArrivalCode)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), plan.DepartureTime)
	assert.Equal(t, plan.DepartureTime.Add(2*time.Hour), plan.ArrivalTime)
	assert.Equal(t, 199.99, plan.BasePrice)
	assert.Equal(t, "Unknown", plan.AirlineName)
}

func TestPrepareImport_MissingFlightNumber(t *testing.T) {
	_, err := PrepareImport(ExternalFlight{FlightNumber: "   "}, time.Now())

	var invalid *InvalidBookingError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "External flight number is required", invalid.Reason)
}

func TestPrepareImport_SameAirports(t *testing.T) {
	_, err := PrepareImport(ExternalFlight{
		FlightNumber: "AA1",
		Origin:       "jfk",
		Destination:  "JFK",
	}, time.Now())

	var invalid *InvalidBookingError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Departure and arrival airports cannot be the same", invalid.Reason)
}

func TestPrepareImport_ArrivalNotAfterDepartureForcedForward(t *testing.T) {
	dep := time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC)
	arr := dep.Add(-1 * time.Hour)

	plan, err := PrepareImport(ExternalFlight{
		FlightNumber:  "AA1",
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureTime: &dep,
		ArrivalTime:   &arr,
	}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, dep.Add(2*time.Hour), plan.ArrivalTime)
}

func TestPrepareImport_NonPositivePrice(t *testing.T) {
	plan, err := PrepareImport(ExternalFlight{
		FlightNumber: "AA1",
		Origin:       "JFK",
		Destination:  "LAX",
		Price:        -10,
	}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, 199.99, plan.BasePrice)
}
