package dto

import (
	"time"

	"busline/internal/domains/schedule/model"
	"busline/shared/constant"
	gModel "busline/shared/model"
	"busline/shared/timezone"

	"github.com/google/uuid"
)

type CreateScheduleRequest struct {
	RouteID        string `json:"route_id"        validate:"required,uuid"`
	BusID          string `json:"bus_id"          validate:"required,uuid"`
	DepartureDate  string `json:"departure_date"  validate:"required,dateonly"`
	DepartureTime  string `json:"departure_time"  validate:"required,timeonly"`
	ArrivalTime    string `json:"arrival_time"    validate:"required,timeonly"`
	AvailableSeats int    `json:"available_seats" validate:"required,min=0,max=100"`
}

func (c *CreateScheduleRequest) ToModel(user string) model.Schedule {
	departureDate, _ := time.Parse(constant.DateOnlyFormat, c.DepartureDate)

	return model.Schedule{
		ID:             uuid.NewString(),
		RouteID:        c.RouteID,
		BusID:          c.BusID,
		DepartureDate:  departureDate,
		DepartureTime:  c.DepartureTime,
		ArrivalTime:    c.ArrivalTime,
		AvailableSeats: c.AvailableSeats,
		Active:         true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}
