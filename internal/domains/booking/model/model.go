package model

import (
	"time"

	"busline/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldScheduleID     = "schedule_id"
	FieldPassengerEmail = "passenger_email"
	FieldBookingDate    = "booking_date"
)

// Booking denormalizes the trip details at purchase time so the ticket stays
// stable even if the schedule or bus is later edited.
type Booking struct {
	ID                  string    `db:"id"`
	ScheduleID          string    `db:"schedule_id"`
	BusID               string    `db:"bus_id"`
	RouteID             string    `db:"route_id"`
	PassengerName       string    `db:"passenger_name"`
	PassengerPhone      string    `db:"passenger_phone"`
	PassengerEmail      string    `db:"passenger_email"`
	SeatsBooked         int       `db:"seats_booked"`
	TotalFare           float64   `db:"total_fare"`
	SourceLocation      string    `db:"source_location"`
	DestinationLocation string    `db:"destination_location"`
	DepartureDate       time.Time `db:"departure_date"`
	DepartureTime       string    `db:"departure_time"`
	BusNumber           string    `db:"bus_number"`
	BusName             string    `db:"bus_name"`
	BookingDate         time.Time `db:"booking_date"`
	Status              string    `db:"status"`
	model.Metadata
}
