package model

import (
	"busline/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "buses"
	EntityName = "bus"

	FieldID       = "id"
	FieldName     = "name"
	FieldNumber   = "number"
	FieldOperator = "operator"
	FieldBusType  = "bus_type"
	FieldCapacity = "capacity"
	FieldFare     = "fare"
	FieldStatus   = "status"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Bus struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Number    string         `db:"number"`
	Operator  string         `db:"operator"`
	BusType   string         `db:"bus_type"`
	Capacity  int            `db:"capacity"`
	Fare      float64        `db:"fare"`
	Amenities pq.StringArray `db:"amenities"`
	Status    string         `db:"status"`
	model.Metadata
}
