package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"busline/infras/otel"
	"busline/infras/postgres"
	"busline/internal/domains/bus/model"
	gDto "busline/shared/dto"
	gRepo "busline/shared/repository"
)

type Bus interface {
	Insert(ctx context.Context, model model.Bus) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Bus, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Bus, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Bus]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Bus {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Bus](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
