package assistant

import (
	"net/http"

	"busline/infras/otel"
	"busline/internal/domains/assistant/model/dto"
	"busline/internal/domains/assistant/service"
	"busline/shared/constant"
	"busline/shared/validator"
	"busline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Assistant
	otel    otel.Otel
}

func New(service service.Assistant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/assistant", func(routerGroup chi.Router) {
		routerGroup.Post("/chat", handler.Chat)
	})
}

// Chat answers a travel question through the assistant upstream.
// @Summary Ask the travel assistant
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat Request"
// @Success 200 {object} response.Data[dto.ChatResponse]
// @Failure 400 {object} response.Error
// @Failure 429 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/assistant/chat [post]
func (handler *Handler) Chat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssistantChat")
	defer scope.End()

	req := dto.ChatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Chat(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("assistant chat failed")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
