package jobs

import (
	"log"
	"time"

	"github.com/dkimathi/airline_reservation/database"
	"github.com/dkimathi/airline_reservation/models"
)

// ProgressFlightStatuses advances flights past their scheduled times:
// SCHEDULED, BOARDING or DELAYED flights whose departure has passed become
// DEPARTED, DEPARTED flights past their arrival become ARRIVED, and CONFIRMED
// bookings on ARRIVED flights are closed out as COMPLETED.
func ProgressFlightStatuses() {
	log.Println("Running job: ProgressFlightStatuses...")

	now := time.Now()

	departed := database.DB.Model(&models.Flight{}).
		Where("status IN ? AND departure_time <= ?",
			[]string{models.FlightStatusScheduled, models.FlightStatusBoarding, models.FlightStatusDelayed}, now).
		Update("status", models.FlightStatusDeparted)
	if departed.Error != nil {
		log.Printf("Error marking departed flights: %v", departed.Error)
		return
	}

	arrived := database.DB.Model(&models.Flight{}).
		Where("status = ? AND arrival_time <= ?", models.FlightStatusDeparted, now).
		Update("status", models.FlightStatusArrived)
	if arrived.Error != nil {
		log.Printf("Error marking arrived flights: %v", arrived.Error)
		return
	}

	completed := database.DB.Model(&models.Booking{}).
		Where("status = ? AND flight_id IN (?)", models.BookingStatusConfirmed,
			database.DB.Model(&models.Flight{}).Select("id").Where("status = ?", models.FlightStatusArrived)).
		Update("status", models.BookingStatusCompleted)
	if completed.Error != nil {
		log.Printf("Error completing bookings: %v", completed.Error)
		return
	}

	if departed.RowsAffected > 0 || arrived.RowsAffected > 0 || completed.RowsAffected > 0 {
		log.Printf("Flight status job: %d departed, %d arrived, %d booking(s) completed.",
			departed.RowsAffected, arrived.RowsAffected, completed.RowsAffected)
	}
}
