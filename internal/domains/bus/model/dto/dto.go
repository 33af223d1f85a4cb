package dto

import (
	"busline/internal/domains/bus/model"
	gModel "busline/shared/model"
	"busline/shared/timezone"

	"github.com/google/uuid"
)

type CreateBusRequest struct {
	Name      string   `json:"name"      validate:"required,max=100"`
	Number    string   `json:"number"    validate:"required,max=20"`
	Operator  string   `json:"operator"  validate:"omitempty,max=100"`
	BusType   string   `json:"bus_type"  validate:"omitempty,max=50"`
	Capacity  int      `json:"capacity"  validate:"required,min=1,max=100"`
	Fare      float64  `json:"fare"      validate:"required,min=0"`
	Amenities []string `json:"amenities" validate:"omitempty,dive,max=50"`
}

func (c *CreateBusRequest) ToModel(user string) model.Bus {
	return model.Bus{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Number:    c.Number,
		Operator:  c.Operator,
		BusType:   c.BusType,
		Capacity:  c.Capacity,
		Fare:      c.Fare,
		Amenities: c.Amenities,
		Status:    model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BusResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Number    string   `json:"number"`
	Operator  string   `json:"operator"`
	BusType   string   `json:"bus_type"`
	Capacity  int      `json:"capacity"`
	Fare      float64  `json:"fare"`
	Amenities []string `json:"amenities"`
	Status    string   `json:"status"`
}

func (r *BusResponse) FromModel(model model.Bus) {
	r.ID = model.ID
	r.Name = model.Name
	r.Number = model.Number
	r.Operator = model.Operator
	r.BusType = model.BusType
	r.Capacity = model.Capacity
	r.Fare = model.Fare
	r.Amenities = model.Amenities
	r.Status = model.Status

	if r.Amenities == nil {
		r.Amenities = []string{}
	}
}
