package services

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	config "github.com/dkimathi/airline_reservation/configs"
)

// Client for the Aviationstack flight-data API.
//
// Configuration:
//   - EXTERNAL_FLIGHTS_API_KEY: Aviationstack access key
//   - EXTERNAL_FLIGHTS_USE_MOCK: set to "true" to skip the API entirely
//
// Fetches are best-effort and never fail outward: an unreachable or erroring
// API degrades to the deterministic mock set (fetch-all) or an empty list.

const aviationstackBaseURL = "https://api.aviationstack.com/v1/flights"

var externalHTTPClient = &http.Client{Timeout: 10 * time.Second}

// ExternalFlight is the normalized shape of a third-party flight record.
type ExternalFlight struct {
	ID            string     `json:"id"`
	FlightNumber  string     `json:"flight_number"`
	Airline       string     `json:"airline"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	Price         float64    `json:"price"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
}

type aviationstackResponse struct {
	Error *aviationstackError   `json:"error"`
	Data  []aviationstackFlight `json:"data"`
}

type aviationstackError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type aviationstackFlight struct {
	Airline struct {
		Name string `json:"name"`
	} `json:"airline"`
	Flight struct {
		Number string `json:"number"`
		Iata   string `json:"iata"`
	} `json:"flight"`
	Departure aviationstackEndpoint `json:"departure"`
	Arrival   aviationstackEndpoint `json:"arrival"`
}

type aviationstackEndpoint struct {
	Airport   string `json:"airport"`
	Iata      string `json:"iata"`
	Scheduled string `json:"scheduled"`
}

func useMockFlights() bool {
	return config.Config("EXTERNAL_FLIGHTS_USE_MOCK") == "true" || config.Config("EXTERNAL_FLIGHTS_API_KEY") == ""
}

// FetchAllExternalFlights returns live flights, or the mock set when the API
// is unconfigured or misbehaving.
func FetchAllExternalFlights() []ExternalFlight {
	if useMockFlights() {
		return mockExternalFlights()
	}

	var cached []ExternalFlight
	ctx := context.Background()
	if cacheGet(ctx, "extflights:all", &cached) {
		return cached
	}

	flights, ok := callAviationstack("", "", "")
	if !ok || len(flights) == 0 {
		log.Println("Aviationstack unavailable, falling back to mock flight data")
		return mockExternalFlights()
	}

	cacheSet(ctx, "extflights:all", flights, externalCacheTTL)
	return flights
}

// FetchExternalFlightsByNumber filters by flight number. With the live API an
// error yields an empty list rather than the mock set.
func FetchExternalFlightsByNumber(flightNumber string) []ExternalFlight {
	if useMockFlights() {
		matches := []ExternalFlight{}
		for _, f := range mockExternalFlights() {
			if strings.EqualFold(f.FlightNumber, flightNumber) {
				matches = append(matches, f)
			}
		}
		return matches
	}

	var cached []ExternalFlight
	ctx := context.Background()
	key := "extflights:number:" + strings.ToUpper(flightNumber)
	if cacheGet(ctx, key, &cached) {
		return cached
	}

	flights, ok := callAviationstack(flightNumber, "", "")
	if !ok {
		return []ExternalFlight{}
	}
	cacheSet(ctx, key, flights, externalCacheTTL)
	return flights
}

// FetchExternalFlightsByRoute filters by departure and arrival IATA codes.
// Used by the unified search path.
func FetchExternalFlightsByRoute(depCode, arrCode string) []ExternalFlight {
	if useMockFlights() {
		matches := []ExternalFlight{}
		for _, f := range mockExternalFlights() {
			if strings.EqualFold(f.Origin, depCode) && strings.EqualFold(f.Destination, arrCode) {
				matches = append(matches, f)
			}
		}
		return matches
	}

	var cached []ExternalFlight
	ctx := context.Background()
	key := "extflights:route:" + strings.ToUpper(depCode) + "-" + strings.ToUpper(arrCode)
	if cacheGet(ctx, key, &cached) {
		return cached
	}

	flights, ok := callAviationstack("", depCode, arrCode)
	if !ok {
		return []ExternalFlight{}
	}
	cacheSet(ctx, key, flights, externalCacheTTL)
	return flights
}

// FetchExternalFlightByID resolves a single flight. Aviationstack has no
// by-id endpoint, so the id is treated as a flight number, with the mock set
// as last resort.
func FetchExternalFlightByID(id string) ExternalFlight {
	flights := FetchExternalFlightsByNumber(id)
	if len(flights) > 0 {
		return flights[0]
	}

	mocks := mockExternalFlights()
	for _, f := range mocks {
		if f.ID == id {
			return f
		}
	}
	return mocks[0]
}

func callAviationstack(flightIata, depIata, arrIata string) ([]ExternalFlight, bool) {
	resp, err := externalHTTPClient.Get(buildAviationstackURL(flightIata, depIata, arrIata, 10))
	if err != nil {
		log.Printf("Aviationstack request failed: %v", err)
		return nil, false
	}
	defer resp.Body.Close()

	var body aviationstackResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("Aviationstack response decode failed: %v", err)
		return nil, false
	}
	if body.Error != nil {
		log.Printf("Aviationstack API error: code=%s, message=%s", body.Error.Code, body.Error.Message)
		return nil, false
	}

	flights := make([]ExternalFlight, 0, len(body.Data))
	for _, f := range body.Data {
		flights = append(flights, mapAviationstackFlight(f))
	}
	return flights, true
}

// buildAviationstackURL builds the request URL. Never log the returned string,
// it contains the API key.
func buildAviationstackURL(flightIata, depIata, arrIata string, limit int) string {
	params := url.Values{}
	params.Set("access_key", config.Config("EXTERNAL_FLIGHTS_API_KEY"))
	params.Set("limit", strconv.Itoa(limit))
	if flightIata != "" {
		params.Set("flight_iata", flightIata)
	}
	if depIata != "" {
		params.Set("dep_iata", depIata)
	}
	if arrIata != "" {
		params.Set("arr_iata", arrIata)
	}
	return aviationstackBaseURL + "?" + params.Encode()
}

func mapAviationstackFlight(a aviationstackFlight) ExternalFlight {
	f := ExternalFlight{Airline: a.Airline.Name}

	if a.Flight.Number != "" {
		f.FlightNumber = a.Flight.Number
	} else {
		f.FlightNumber = a.Flight.Iata
	}
	if a.Flight.Iata != "" {
		f.ID = a.Flight.Iata
	} else {
		f.ID = a.Flight.Number
	}

	f.Origin = a.Departure.Iata
	f.Destination = a.Arrival.Iata
	f.Price = estimateRoutePrice(f.Origin, f.Destination)
	f.DepartureTime = parseAviationTime(a.Departure.Scheduled)
	f.ArrivalTime = parseAviationTime(a.Arrival.Scheduled)

	return f
}

// estimateRoutePrice fills in a price for providers that don't carry one.
// Crude placeholder kept for compatibility: two 3-letter codes are assumed
// domestic and priced lower.
func estimateRoutePrice(origin, destination string) float64 {
	if origin != "" && destination != "" {
		if len(origin) == 3 && len(destination) == 3 {
			return 299.99
		}
		return 599.99
	}
	return 399.99
}

func parseAviationTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	if len(s) > 19 {
		s = s[:19]
	}
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return nil
	}
	return &t
}

func mockExternalFlights() []ExternalFlight {
	base := time.Now().Truncate(24 * time.Hour).Add(10 * time.Hour)
	return []ExternalFlight{
		mockExternalFlight("1", "AA101", "American Airlines", "JFK", "LAX", 299.99, base, base.Add(5*time.Hour)),
		mockExternalFlight("2", "DL205", "Delta Airlines", "ATL", "SFO", 349.99, base.Add(2*time.Hour), base.Add(7*time.Hour)),
		mockExternalFlight("3", "UA310", "United Airlines", "ORD", "MIA", 249.99, base.Add(1*time.Hour), base.Add(3*time.Hour)),
		mockExternalFlight("4", "SW450", "Southwest Airlines", "DEN", "SEA", 199.99, base.Add(3*time.Hour), base.Add(5*time.Hour)),
		mockExternalFlight("5", "BA501", "British Airways", "LHR", "JFK", 599.99, base.Add(4*time.Hour), base.Add(10*time.Hour)),
		mockExternalFlight("6", "LH601", "Lufthansa", "FRA", "DXB", 449.99, base.Add(5*time.Hour), base.Add(12*time.Hour)),
		mockExternalFlight("7", "EK701", "Emirates", "DXB", "SIN", 399.99, base.Add(6*time.Hour), base.Add(14*time.Hour)),
		mockExternalFlight("8", "QF801", "Qantas", "SYD", "LAX", 699.99, base.Add(7*time.Hour), base.Add(22*time.Hour)),
	}
}

func mockExternalFlight(id, number, airline, origin, destination string, price float64, dep, arr time.Time) ExternalFlight {
	return ExternalFlight{
		ID:            id,
		FlightNumber:  number,
		Airline:       airline,
		Origin:        origin,
		Destination:   destination,
		Price:         price,
		DepartureTime: &dep,
		ArrivalTime:   &arr,
	}
}
