package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"busline/infras/otel"
	"busline/infras/postgres"
	"busline/internal/domains/route/model"
	gDto "busline/shared/dto"
	gRepo "busline/shared/repository"
)

// FilterActiveEndpoints matches active routes by endpoint names,
// case-insensitively, since location names are entered in mixed case.
func FilterActiveEndpoints(sourceLocation, destinationLocation string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				ArgName:  "source_location_eq",
				Field:    fmt.Sprintf("LOWER(%s.%s)", model.TableName, model.FieldSourceLocation),
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(sourceLocation)),
			},
			gDto.Filter{
				ArgName:  "destination_location_eq",
				Field:    fmt.Sprintf("LOWER(%s.%s)", model.TableName, model.FieldDestinationLocation),
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(destinationLocation)),
			},
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}
}

type Route interface {
	Insert(ctx context.Context, model model.Route) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Route, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Route, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Route]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Route {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Route](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
