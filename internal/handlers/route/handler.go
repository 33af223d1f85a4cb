package route

import (
	"net/http"

	"busline/infras/otel"
	"busline/internal/domains/route/model/dto"
	"busline/internal/domains/route/service"
	"busline/shared/constant"
	"busline/shared/failure"
	"busline/shared/validator"
	"busline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var errMissingEndpoints = failure.BadRequestFromString("from and to query parameters are required")

type Handler struct {
	service service.Route
	otel    otel.Otel
}

func New(service service.Route, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/routes", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRoutes)
		routerGroup.Post("/", handler.CreateRoute)
	})
}

// GetRoutes lists active routes between two locations.
// @Summary Get routes
// @Tags Route
// @Produce json
// @Param from query string true "Source location name"
// @Param to query string true "Destination location name"
// @Success 200 {object} response.Data[dto.GetRoutesResponse]
// @Failure 400 {object} response.Error
// @Router /v1/routes [get]
func (handler *Handler) GetRoutes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoutes")
	defer scope.End()

	from := request.URL.Query().Get("from")
	to := request.URL.Query().Get("to")

	if from == constant.Empty || to == constant.Empty {
		response.WithError(writer, errMissingEndpoints)

		return
	}

	models, err := handler.service.FindActive(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get routes")

		response.WithError(writer, err)

		return
	}

	var res dto.GetRoutesResponse

	res.FromModels(models)

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateRoute registers a new route between two locations.
// @Summary Create a route
// @Tags Route
// @Accept json
// @Produce json
// @Param request body dto.CreateRouteRequest true "Create Route Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/routes [post]
// @Security BearerAuth
func (handler *Handler) CreateRoute(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoute")
	defer scope.End()

	req := dto.CreateRouteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create route")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Route created successfully")
}
