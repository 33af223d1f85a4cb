package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"busline/config"
	"busline/infras/otel"
	"busline/internal/domains/assistant/model/dto"
	"busline/shared/constant"
	"busline/shared/failure"

	"github.com/rs/zerolog/log"
)

type Assistant interface {
	Chat(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error)
}

type serviceImpl struct {
	cfg    *config.Config
	otel   otel.Otel
	client *http.Client
}

func New(cfg *config.Config, otel otel.Otel) Assistant {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.Assistant.TimeoutSeconds) * time.Second,
		},
	}
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Chat proxies the prompt to the Generative Language API with travel-assistant
// framing for the configured city. Upstream status codes map onto the local
// failure taxonomy so callers can tell a bad prompt from a throttled upstream.
func (s *serviceImpl) Chat(ctx context.Context, req dto.ChatRequest) (res dto.ChatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".AssistantChat")
	defer scope.End()
	defer scope.TraceIfError(err)

	if s.cfg.External.Assistant.APIKey == constant.Empty {
		return res, failure.Unavailable("assistant is not configured") // nolint:wrapcheck
	}

	payload, err := json.Marshal(generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: s.framePrompt(req)}}},
		},
	})
	if err != nil {
		return res, fmt.Errorf("failed to marshal assistant request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimSuffix(s.cfg.External.Assistant.BaseURL, "/"),
		s.cfg.External.Assistant.Model,
		s.cfg.External.Assistant.APIKey,
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return res, fmt.Errorf("failed to build assistant request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	httpRes, err := s.client.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Msg("assistant upstream unreachable")

		return res, failure.Unavailable("assistant temporarily unavailable") // nolint:wrapcheck
	}
	defer httpRes.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpRes.Body, 1<<20))
	if err != nil {
		return res, fmt.Errorf("failed to read assistant response: %w", err)
	}

	if err = classifyUpstreamStatus(httpRes.StatusCode); err != nil {
		log.Warn().Int("status", httpRes.StatusCode).Msg("assistant upstream rejected request")

		return res, err
	}

	var upstream generateContentResponse

	if err = json.Unmarshal(body, &upstream); err != nil {
		return res, fmt.Errorf("failed to decode assistant response: %w", err)
	}

	if len(upstream.Candidates) == 0 || len(upstream.Candidates[0].Content.Parts) == 0 {
		return res, failure.Unavailable("assistant returned no answer") // nolint:wrapcheck
	}

	res.Reply = upstream.Candidates[0].Content.Parts[0].Text

	return res, nil
}

func (s *serviceImpl) framePrompt(req dto.ChatRequest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a helpful %s bus travel assistant. ", s.cfg.App.City)
	sb.WriteString("Answer briefly about bus routes, timings, fares, and travel tips. ")
	sb.WriteString("If the question is unrelated to bus travel, say so politely.\n")

	if req.Source != constant.Empty && req.Destination != constant.Empty {
		fmt.Fprintf(&sb, "The traveller is going from %s to %s.\n", req.Source, req.Destination)
	}

	sb.WriteString("Question: ")
	sb.WriteString(req.Prompt)

	return sb.String()
}

func classifyUpstreamStatus(status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusBadRequest:
		return failure.BadRequestFromString("assistant rejected the prompt") // nolint:wrapcheck
	case status == http.StatusTooManyRequests:
		return failure.TooManyRequests("assistant rate limit reached") // nolint:wrapcheck
	case status >= http.StatusInternalServerError:
		return failure.Unavailable("assistant temporarily unavailable") // nolint:wrapcheck
	default:
		return failure.Unavailable(fmt.Sprintf("assistant returned unexpected status %d", status)) // nolint:wrapcheck
	}
}
