package dto

import (
	"busline/internal/domains/location/model"
	gModel "busline/shared/model"
	"busline/shared/timezone"

	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	State string `json:"state" validate:"omitempty,max=100"`
}

func (c *CreateLocationRequest) ToModel(user string) model.Location {
	return model.Location{
		ID:     uuid.NewString(),
		Name:   c.Name,
		State:  c.State,
		Active: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type LocationResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

func (r *LocationResponse) FromModel(model model.Location) {
	r.ID = model.ID
	r.Name = model.Name
	r.State = model.State
}

type GetLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}

func (r *GetLocationsResponse) FromModels(models []model.Location) {
	r.Locations = make([]LocationResponse, len(models))
	for i, mod := range models {
		r.Locations[i].FromModel(mod)
	}
}
