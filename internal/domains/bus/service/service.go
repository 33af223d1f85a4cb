package service

import (
	"context"
	"fmt"

	"busline/config"
	"busline/infras/otel"
	"busline/internal/domains/bus/model"
	"busline/internal/domains/bus/model/dto"
	"busline/internal/domains/bus/repository"
	"busline/shared"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"

	"github.com/rs/zerolog/log"
)

type Bus interface {
	Create(ctx context.Context, req dto.CreateBusRequest) error
	Get(ctx context.Context, id string) (model.Bus, error)
}

type serviceImpl struct {
	repo repository.Bus
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Bus, cfg *config.Config, otel otel.Otel) Bus {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldNumber, Operator: gDto.FilterOperatorEq, Value: req.Number, Table: model.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check bus existence")

		return fmt.Errorf("failed to check bus existence: %w", err)
	}

	if exist {
		return failure.Conflict("bus number already registered") // nolint:wrapcheck
	}

	return s.repo.Insert(ctx, req.ToModel(user)) // nolint:wrapcheck
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Bus, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBus")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bus")

		return res, fmt.Errorf("failed to get bus: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("bus not found") // nolint:wrapcheck
	}

	return res, nil
}
