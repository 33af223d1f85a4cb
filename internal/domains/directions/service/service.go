package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"busline/config"
	"busline/infras/otel"
	"busline/internal/domains/directions/model/dto"
	"busline/shared/constant"
	"busline/shared/failure"

	"github.com/rs/zerolog/log"
)

type Directions interface {
	Route(ctx context.Context, req dto.DirectionsRequest) (dto.DirectionsResponse, error)
}

type serviceImpl struct {
	cfg    *config.Config
	otel   otel.Otel
	client *http.Client
}

func New(cfg *config.Config, otel otel.Otel) Directions {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.Routing.TimeoutSeconds) * time.Second,
		},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
	} `json:"routes"`
}

// Route asks the OSRM routing engine for the road path between two points.
// OSRM takes coordinates as lng,lat pairs.
func (s *serviceImpl) Route(ctx context.Context, req dto.DirectionsRequest) (res dto.DirectionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Directions")
	defer scope.End()
	defer scope.TraceIfError(err)

	url := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=polyline",
		strings.TrimSuffix(s.cfg.External.Routing.BaseURL, "/"),
		s.cfg.External.Routing.Profile,
		req.FromLng, req.FromLat, req.ToLng, req.ToLat,
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return res, fmt.Errorf("failed to build directions request: %w", err)
	}

	httpRes, err := s.client.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Msg("routing upstream unreachable")

		return res, failure.Unavailable("directions temporarily unavailable") // nolint:wrapcheck
	}
	defer httpRes.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpRes.Body, 4<<20))
	if err != nil {
		return res, fmt.Errorf("failed to read directions response: %w", err)
	}

	if httpRes.StatusCode == http.StatusBadRequest {
		return res, failure.BadRequestFromString("coordinates are outside the routable area") // nolint:wrapcheck
	}

	if httpRes.StatusCode != http.StatusOK {
		log.Warn().Int("status", httpRes.StatusCode).Msg("routing upstream returned error status")

		return res, failure.Unavailable("directions temporarily unavailable") // nolint:wrapcheck
	}

	var upstream osrmResponse

	if err = json.Unmarshal(body, &upstream); err != nil {
		return res, fmt.Errorf("failed to decode directions response: %w", err)
	}

	if upstream.Code != "Ok" || len(upstream.Routes) == 0 {
		return res, failure.NotFound("no route found between the points") // nolint:wrapcheck
	}

	route := upstream.Routes[0]

	res.DistanceKM = math.Round(route.Distance/10) / 100
	res.DurationMinutes = math.Round(route.Duration / 60)
	res.Geometry = route.Geometry
	res.EstimatedFare = s.estimateFare(res.DistanceKM)

	return res, nil
}

func (s *serviceImpl) estimateFare(distanceKM float64) float64 {
	fare := s.cfg.External.Routing.FareBase + s.cfg.External.Routing.FarePerKm*distanceKM

	return math.Round(fare)
}
