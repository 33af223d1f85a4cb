package bus

import (
	"net/http"

	"busline/infras/otel"
	busDto "busline/internal/domains/bus/model/dto"
	"busline/internal/domains/bus/service"
	"busline/shared/constant"
	"busline/shared/validator"
	"busline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bus
	otel    otel.Otel
}

func New(service service.Bus, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/buses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBus)
		routerGroup.Get("/{id}", handler.GetBusByID)
	})
}

// CreateBus registers a new bus.
// @Summary Create a bus
// @Tags Bus
// @Accept json
// @Produce json
// @Param request body busDto.CreateBusRequest true "Create Bus Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/buses [post]
// @Security BearerAuth
func (handler *Handler) CreateBus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBus")
	defer scope.End()

	req := busDto.CreateBusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create bus")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Bus created successfully")
}

// GetBusByID fetches one bus.
// @Summary Get a bus
// @Tags Bus
// @Produce json
// @Param id path string true "Bus ID"
// @Success 200 {object} response.Data[busDto.BusResponse]
// @Failure 404 {object} response.Error
// @Router /v1/buses/{id} [get]
func (handler *Handler) GetBusByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	bus, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bus")

		response.WithError(writer, err)

		return
	}

	var res busDto.BusResponse

	res.FromModel(bus)

	response.WithJSON(writer, http.StatusOK, res)
}
