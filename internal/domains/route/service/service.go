package service

import (
	"context"
	"fmt"
	"strings"

	"busline/config"
	"busline/infras/otel"
	"busline/internal/domains/route/model"
	"busline/internal/domains/route/model/dto"
	"busline/internal/domains/route/repository"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"

	"github.com/rs/zerolog/log"
)

type Route interface {
	Create(ctx context.Context, req dto.CreateRouteRequest) error
	FindActive(ctx context.Context, sourceLocation, destinationLocation string) ([]model.Route, error)
}

type serviceImpl struct {
	repo repository.Route
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Route, cfg *config.Config, otel otel.Otel) Route {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRouteRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRoute")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req.SourceLocation = strings.TrimSpace(req.SourceLocation)
	req.DestinationLocation = strings.TrimSpace(req.DestinationLocation)

	if strings.EqualFold(req.SourceLocation, req.DestinationLocation) {
		return failure.BadRequestFromString("source and destination must differ") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, repository.FilterActiveEndpoints(req.SourceLocation, req.DestinationLocation))
	if err != nil {
		log.Error().Err(err).Msg("failed to check route existence")

		return fmt.Errorf("failed to check route existence: %w", err)
	}

	if exist {
		return failure.Conflict("route already exists") // nolint:wrapcheck
	}

	return s.repo.Insert(ctx, req.ToModel(user)) // nolint:wrapcheck
}

func (s *serviceImpl) FindActive(ctx context.Context, sourceLocation, destinationLocation string) (res []model.Route, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindActiveRoutes")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldSourceLocation, SortDir: constant.SortAscending},
		repository.FilterActiveEndpoints(sourceLocation, destinationLocation))
	if err != nil {
		log.Error().Err(err).Msg("failed to find routes")

		return res, fmt.Errorf("failed to find routes: %w", err)
	}

	return res, nil
}
