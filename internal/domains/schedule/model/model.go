package model

import (
	"fmt"
	"time"

	"busline/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "schedules"
	EntityName = "schedule"

	FieldID             = "id"
	FieldRouteID        = "route_id"
	FieldBusID          = "bus_id"
	FieldDepartureDate  = "departure_date"
	FieldDepartureTime  = "departure_time"
	FieldArrivalTime    = "arrival_time"
	FieldAvailableSeats = "available_seats"
	FieldActive         = "is_active"
)

// Schedule rows join the owning bus so offer listings come back in one query.
// Departure and arrival are TIME columns, so ordering by them is chronological.
type Schedule struct {
	ID             string    `db:"id"`
	RouteID        string    `db:"route_id"`
	BusID          string    `db:"bus_id"`
	DepartureDate  time.Time `db:"departure_date"`
	DepartureTime  string    `db:"departure_time"`
	ArrivalTime    string    `db:"arrival_time"`
	AvailableSeats int       `db:"available_seats"`
	Active         bool      `db:"is_active"`

	BusName      string         `db:"bus_name"      table:"buses" column:"name"`
	BusNumber    string         `db:"bus_number"    table:"buses" column:"number"`
	BusType      string         `db:"bus_type"      table:"buses"`
	BusOperator  string         `db:"bus_operator"  table:"buses" column:"operator"`
	Fare         float64        `db:"fare"          table:"buses"`
	Capacity     int            `db:"capacity"      table:"buses"`
	BusAmenities pq.StringArray `db:"bus_amenities" table:"buses" column:"amenities"`

	model.Metadata
}

func (Schedule) GetJoinQuery() string {
	return fmt.Sprintf("JOIN buses ON buses.id = %s.bus_id", TableName)
}
