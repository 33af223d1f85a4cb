package directions

import (
	"net/http"
	"strconv"

	"busline/infras/otel"
	"busline/internal/domains/directions/model/dto"
	"busline/internal/domains/directions/service"
	"busline/shared/constant"
	"busline/shared/failure"
	"busline/shared/validator"
	"busline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Directions
	otel    otel.Otel
}

func New(service service.Directions, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/directions", handler.GetDirections)
}

// GetDirections returns the road path between two coordinates and a
// display-only fare estimate.
// @Summary Get map directions
// @Tags Directions
// @Produce json
// @Param from_lat query number true "Origin latitude"
// @Param from_lng query number true "Origin longitude"
// @Param to_lat query number true "Destination latitude"
// @Param to_lng query number true "Destination longitude"
// @Success 200 {object} response.Data[dto.DirectionsResponse]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/directions [get]
func (handler *Handler) GetDirections(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDirections")
	defer scope.End()

	req, err := parseQuery(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse directions query")

		response.WithError(writer, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate directions query")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Route(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("directions lookup failed")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func parseQuery(request *http.Request) (dto.DirectionsRequest, error) {
	var req dto.DirectionsRequest

	values := map[string]*float64{
		"from_lat": &req.FromLat,
		"from_lng": &req.FromLng,
		"to_lat":   &req.ToLat,
		"to_lng":   &req.ToLng,
	}

	for name, target := range values {
		raw := request.URL.Query().Get(name)
		if raw == constant.Empty {
			return req, failure.BadRequestFromString(name + " query parameter is required")
		}

		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, failure.BadRequestFromString(name + " must be a number")
		}

		*target = parsed
	}

	return req, nil
}
