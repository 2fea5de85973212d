package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Live seat-inventory feed: clients subscribe per flight and receive an event
// whenever a booking changes a seat's state.

type Client struct {
	FlightID uuid.UUID
	Conn     *websocket.Conn
}

type SeatEvent struct {
	FlightID       uuid.UUID `json:"flight_id"`
	SeatNumber     string    `json:"seat_number"`
	SeatStatus     string    `json:"seat_status"`
	BookingStatus  string    `json:"booking_status"`
	AvailableSeats int       `json:"available_seats"`
}

var clients = make(map[*websocket.Conn]uuid.UUID)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *SeatEvent, 64)

func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.Conn] = client.FlightID
			clientsMu.Unlock()
			log.Printf("Seat feed client registered for flight %s", client.FlightID)
		case client := <-Unregister:
			clientsMu.Lock()
			delete(clients, client.Conn)
			clientsMu.Unlock()
			log.Printf("Seat feed client unregistered for flight %s", client.FlightID)
		case event := <-Broadcast:
			var stale []*websocket.Conn
			clientsMu.RLock()
			for conn, flightID := range clients {
				if flightID != event.FlightID {
					continue
				}
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending seat event for flight %s: %v", event.FlightID, err)
					conn.Close()
					stale = append(stale, conn)
				}
			}
			clientsMu.RUnlock()
			if len(stale) > 0 {
				clientsMu.Lock()
				for _, conn := range stale {
					delete(clients, conn)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// PublishSeatEvent never blocks the booking path; events are dropped when the
// hub is saturated.
func PublishSeatEvent(event SeatEvent) {
	select {
	case Broadcast <- &event:
	default:
	}
}

// ServeFlightFeed keeps the connection registered until the client goes away.
func ServeFlightFeed(conn *websocket.Conn) {
	flightID, err := uuid.Parse(conn.Params("flightId"))
	if err != nil {
		conn.Close()
		return
	}

	client := &Client{FlightID: flightID, Conn: conn}
	Register <- client
	defer func() {
		Unregister <- client
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
