package service

import (
	"context"
	"fmt"

	"busline/config"
	"busline/infras/otel"
	busModel "busline/internal/domains/bus/model"
	busRepo "busline/internal/domains/bus/repository"
	routeModel "busline/internal/domains/route/model"
	routeRepo "busline/internal/domains/route/repository"
	"busline/internal/domains/schedule/model/dto"
	"busline/internal/domains/schedule/repository"
	"busline/shared"
	"busline/shared/constant"
	"busline/shared/failure"

	"github.com/rs/zerolog/log"
)

type Schedule interface {
	Create(ctx context.Context, req dto.CreateScheduleRequest) error
}

type serviceImpl struct {
	repo      repository.Schedule
	routeRepo routeRepo.Route
	busRepo   busRepo.Bus
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Schedule, routeRepo routeRepo.Route, busRepo busRepo.Bus, cfg *config.Config, otel otel.Otel) Schedule {
	return &serviceImpl{
		repo:      repo,
		routeRepo: routeRepo,
		busRepo:   busRepo,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateScheduleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	routeExists, err := s.routeRepo.Exist(ctx, shared.FilterByID(req.RouteID, routeModel.FieldID, routeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if route exists")

		return fmt.Errorf("failed to check if route exists: %w", err)
	}

	if !routeExists {
		return failure.BadRequestFromString("route does not exist") // nolint:wrapcheck
	}

	bus, err := s.busRepo.Get(ctx, shared.FilterByID(req.BusID, busModel.FieldID, busModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bus")

		return fmt.Errorf("failed to get bus: %w", err)
	}

	if bus.ID == constant.Empty {
		return failure.BadRequestFromString("bus does not exist") // nolint:wrapcheck
	}

	if req.AvailableSeats > bus.Capacity {
		return failure.BadRequestFromString("available seats exceed bus capacity") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create schedule")

		return fmt.Errorf("failed to create schedule: %w", err)
	}

	return nil
}
