package model

import "busline/shared/model"

const (
	TableName  = "locations"
	EntityName = "location"

	FieldID     = "id"
	FieldName   = "name"
	FieldState  = "state"
	FieldActive = "is_active"
)

type Location struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	State  string `db:"state"`
	Active bool   `db:"is_active"`
	model.Metadata
}
