package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests rely on EXTERNAL_FLIGHTS_API_KEY being unset so the mock data
// set is served.

func TestFetchAllExternalFlights_MockSet(t *testing.T) {
	flights := FetchAllExternalFlights()

	require.Len(t, flights, 8)
	assert.Equal(t, "AA101", flights[0].FlightNumber)
	assert.Equal(t, "JFK", flights[0].Origin)
	assert.Equal(t, "LAX", flights[0].Destination)
	for _, f := range flights {
		require.NotNil(t, f.DepartureTime)
		require.NotNil(t, f.ArrivalTime)
		assert.True(t, f.ArrivalTime.After(*f.DepartureTime))
		assert.Greater(t, f.Price, 0.0)
	}
}

func TestFetchExternalFlightsByNumber_CaseInsensitive(t *testing.T) {
	flights := FetchExternalFlightsByNumber("ba501")

	require.Len(t, flights, 1)
	assert.Equal(t, "BA501", flights[0].FlightNumber)
	assert.Equal(t, "British Airways", flights[0].Airline)
}

func TestFetchExternalFlightsByNumber_NoMatch(t *testing.T) {
	flights := FetchExternalFlightsByNumber("XX000")
	assert.Empty(t, flights)
	assert.NotNil(t, flights)
}

func TestFetchExternalFlightsByRoute(t *testing.T) {
	flights := FetchExternalFlightsByRoute("jfk", "lax")

	require.Len(t, flights, 1)
	assert.Equal(t, "AA101", flights[0].FlightNumber)

	assert.Empty(t, FetchExternalFlightsByRoute("JFK", "SIN"))
}

func TestFetchExternalFlightByID(t *testing.T) {
	byNumber := FetchExternalFlightByID("DL205")
	assert.Equal(t, "DL205", byNumber.FlightNumber)

	byID := FetchExternalFlightByID("3")
	assert.Equal(t, "UA310", byID.FlightNumber)

	fallback := FetchExternalFlightByID("does-not-exist")
	assert.Equal(t, "AA101", fallback.FlightNumber)
}

func TestMapAviationstackFlight(t *testing.T) {
	var raw aviationstackFlight
	raw.Airline.Name = "Test Air"
	raw.Flight.Number = "123"
	raw.Flight.Iata = "TA123"
	raw.Departure = aviationstackEndpoint{Airport: "Heathrow", Iata: "LHR", Scheduled: "2026-09-01T08:15:00+00:00"}
	raw.Arrival = aviationstackEndpoint{Airport: "Kennedy", Iata: "JFK", Scheduled: "2026-09-01T16:45:00+00:00"}

	f := mapAviationstackFlight(raw)

	assert.Equal(t, "123", f.FlightNumber)
	assert.Equal(t, "TA123", f.ID)
	assert.Equal(t, "LHR", f.Origin)
	assert.Equal(t, "JFK", f.Destination)
	assert.Equal(t, 299.99, f.Price)
	require.NotNil(t, f.DepartureTime)
	assert.Equal(t, time.Date(2026, 9, 1, 8, 15, 0, 0, time.UTC), *f.DepartureTime)
}

func TestEstimateRoutePrice(t *testing.T) {
	assert.Equal(t, 299.99, estimateRoutePrice("JFK", "LAX"))
	assert.Equal(t, 599.99, estimateRoutePrice("LHRX", "JFK"))
	assert.Equal(t, 399.99, estimateRoutePrice("", "LAX"))
	assert.Equal(t, 399.99, estimateRoutePrice("JFK", ""))
}

func TestParseAviationTime(t *testing.T) {
	assert.Nil(t, parseAviationTime(""))
	assert.Nil(t, parseAviationTime("not-a-time"))

	parsed := parseAviationTime("2026-09-01T08:15:00")
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2026, 9, 1, 8, 15, 0, 0, time.UTC), *parsed)

	truncated := parseAviationTime("2026-09-01T08:15:00+03:00")
	require.NotNil(t, truncated)
	assert.Equal(t, time.Date(2026, 9, 1, 8, 15, 0, 0, time.UTC), *truncated)
}
