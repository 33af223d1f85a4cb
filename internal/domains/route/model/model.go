package model

import "busline/shared/model"

const (
	TableName  = "routes"
	EntityName = "route"

	FieldID                  = "id"
	FieldSourceLocation      = "source_location"
	FieldDestinationLocation = "destination_location"
	FieldDistanceKM          = "distance_km"
	FieldActive              = "is_active"
)

// Route references locations by display name rather than by foreign key, so a
// renamed location silently orphans its routes. Admin updates must rename both.
type Route struct {
	ID                  string  `db:"id"`
	SourceLocation      string  `db:"source_location"`
	DestinationLocation string  `db:"destination_location"`
	DistanceKM          float64 `db:"distance_km"`
	Active              bool    `db:"is_active"`
	model.Metadata
}
