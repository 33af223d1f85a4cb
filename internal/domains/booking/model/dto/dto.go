package dto

import (
	"busline/internal/domains/booking/model"
	routeModel "busline/internal/domains/route/model"
	scheduleModel "busline/internal/domains/schedule/model"
	"busline/shared/constant"
	gModel "busline/shared/model"
	"busline/shared/timezone"

	"github.com/google/uuid"
)

type SearchOffersRequest struct {
	From string `json:"from" validate:"required,max=100"`
	To   string `json:"to"   validate:"required,max=100"`
	Date string `json:"date" validate:"required,dateonly"`
}

// OfferResponse is one bookable departure: a schedule joined with its bus and
// the route it serves.
type OfferResponse struct {
	ScheduleID          string   `json:"schedule_id"`
	RouteID             string   `json:"route_id"`
	SourceLocation      string   `json:"source_location"`
	DestinationLocation string   `json:"destination_location"`
	DepartureDate       string   `json:"departure_date"`
	DepartureTime       string   `json:"departure_time"`
	ArrivalTime         string   `json:"arrival_time"`
	AvailableSeats      int      `json:"available_seats"`
	MaxSeatsPerBooking  int      `json:"max_seats_per_booking"`
	BusID               string   `json:"bus_id"`
	BusName             string   `json:"bus_name"`
	BusNumber           string   `json:"bus_number"`
	BusType             string   `json:"bus_type"`
	Fare                float64  `json:"fare"`
	Amenities           []string `json:"amenities"`
}

func (o *OfferResponse) FromModels(schedule scheduleModel.Schedule, route routeModel.Route, maxSeats int) {
	if maxSeats > schedule.AvailableSeats {
		maxSeats = schedule.AvailableSeats
	}

	o.ScheduleID = schedule.ID
	o.RouteID = route.ID
	o.SourceLocation = route.SourceLocation
	o.DestinationLocation = route.DestinationLocation
	o.DepartureDate = schedule.DepartureDate.Format(constant.DateOnlyFormat)
	o.DepartureTime = schedule.DepartureTime
	o.ArrivalTime = schedule.ArrivalTime
	o.AvailableSeats = schedule.AvailableSeats
	o.MaxSeatsPerBooking = maxSeats
	o.BusID = schedule.BusID
	o.BusName = schedule.BusName
	o.BusNumber = schedule.BusNumber
	o.BusType = schedule.BusType
	o.Fare = schedule.Fare
	o.Amenities = schedule.BusAmenities

	if o.Amenities == nil {
		o.Amenities = []string{}
	}
}

type SearchOffersResponse struct {
	Offers []OfferResponse `json:"offers"`
}

type CreateBookingRequest struct {
	ScheduleID     string `json:"schedule_id"     validate:"required,uuid"`
	PassengerName  string `json:"passenger_name"  validate:"required,max=100"`
	PassengerPhone string `json:"passenger_phone" validate:"required,min=7,max=20"`
	PassengerEmail string `json:"passenger_email" validate:"omitempty,email,max=100"`
	Seats          int    `json:"seats"           validate:"required,min=1,max=5"`
}

func (c *CreateBookingRequest) ToModel(user string, schedule scheduleModel.Schedule, route routeModel.Route) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:                  uuid.NewString(),
		ScheduleID:          schedule.ID,
		BusID:               schedule.BusID,
		RouteID:             route.ID,
		PassengerName:       c.PassengerName,
		PassengerPhone:      c.PassengerPhone,
		PassengerEmail:      c.PassengerEmail,
		SeatsBooked:         c.Seats,
		TotalFare:           schedule.Fare * float64(c.Seats),
		SourceLocation:      route.SourceLocation,
		DestinationLocation: route.DestinationLocation,
		DepartureDate:       schedule.DepartureDate,
		DepartureTime:       schedule.DepartureTime,
		BusNumber:           schedule.BusNumber,
		BusName:             schedule.BusName,
		BookingDate:         now,
		Status:              constant.BookingStatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BookingResponse struct {
	ID                  string  `json:"id"`
	ScheduleID          string  `json:"schedule_id"`
	BusID               string  `json:"bus_id"`
	RouteID             string  `json:"route_id"`
	PassengerName       string  `json:"passenger_name"`
	PassengerPhone      string  `json:"passenger_phone"`
	PassengerEmail      string  `json:"passenger_email"`
	SeatsBooked         int     `json:"seats_booked"`
	TotalFare           float64 `json:"total_fare"`
	SourceLocation      string  `json:"source_location"`
	DestinationLocation string  `json:"destination_location"`
	DepartureDate       string  `json:"departure_date"`
	DepartureTime       string  `json:"departure_time"`
	BusNumber           string  `json:"bus_number"`
	BusName             string  `json:"bus_name"`
	BookingDate         string  `json:"booking_date"`
	Status              string  `json:"status"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ScheduleID = model.ScheduleID
	r.BusID = model.BusID
	r.RouteID = model.RouteID
	r.PassengerName = model.PassengerName
	r.PassengerPhone = model.PassengerPhone
	r.PassengerEmail = model.PassengerEmail
	r.SeatsBooked = model.SeatsBooked
	r.TotalFare = model.TotalFare
	r.SourceLocation = model.SourceLocation
	r.DestinationLocation = model.DestinationLocation
	r.DepartureDate = model.DepartureDate.Format(constant.DateOnlyFormat)
	r.DepartureTime = model.DepartureTime
	r.BusNumber = model.BusNumber
	r.BusName = model.BusName
	r.BookingDate = model.BookingDate.Format(constant.DateFormat)
	r.Status = model.Status
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingCreatedEvent is the Kafka payload emitted after a successful commit.
type BookingCreatedEvent struct {
	BookingID           string  `json:"booking_id"`
	ScheduleID          string  `json:"schedule_id"`
	SourceLocation      string  `json:"source_location"`
	DestinationLocation string  `json:"destination_location"`
	SeatsBooked         int     `json:"seats_booked"`
	TotalFare           float64 `json:"total_fare"`
	BookedAt            string  `json:"booked_at"`
}

func (e *BookingCreatedEvent) FromModel(model model.Booking) {
	e.BookingID = model.ID
	e.ScheduleID = model.ScheduleID
	e.SourceLocation = model.SourceLocation
	e.DestinationLocation = model.DestinationLocation
	e.SeatsBooked = model.SeatsBooked
	e.TotalFare = model.TotalFare
	e.BookedAt = model.BookingDate.Format(constant.DateFormat)
}
