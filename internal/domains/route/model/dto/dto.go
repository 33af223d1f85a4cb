package dto

import (
	"busline/internal/domains/route/model"
	gModel "busline/shared/model"
	"busline/shared/timezone"

	"github.com/google/uuid"
)

type CreateRouteRequest struct {
	SourceLocation      string  `json:"source_location"      validate:"required,max=100"`
	DestinationLocation string  `json:"destination_location" validate:"required,max=100"`
	DistanceKM          float64 `json:"distance_km"          validate:"omitempty,min=0"`
}

func (c *CreateRouteRequest) ToModel(user string) model.Route {
	return model.Route{
		ID:                  uuid.NewString(),
		SourceLocation:      c.SourceLocation,
		DestinationLocation: c.DestinationLocation,
		DistanceKM:          c.DistanceKM,
		Active:              true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RouteResponse struct {
	ID                  string  `json:"id"`
	SourceLocation      string  `json:"source_location"`
	DestinationLocation string  `json:"destination_location"`
	DistanceKM          float64 `json:"distance_km"`
}

func (r *RouteResponse) FromModel(model model.Route) {
	r.ID = model.ID
	r.SourceLocation = model.SourceLocation
	r.DestinationLocation = model.DestinationLocation
	r.DistanceKM = model.DistanceKM
}

type GetRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

func (r *GetRoutesResponse) FromModels(models []model.Route) {
	r.Routes = make([]RouteResponse, len(models))
	for i, mod := range models {
		r.Routes[i].FromModel(mod)
	}
}
