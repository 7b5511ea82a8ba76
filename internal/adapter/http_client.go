package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-buddy/internal/config"
	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/internal/utils"
)

const (
	summaryMaxLength = 150
	summaryMinLength = 30
)

type summarizeRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters summarizeParameters `json:"parameters"`
}

type summarizeParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type summarizeResult struct {
	SummaryText string `json:"summary_text"`
}

type upstreamError struct {
	Error string `json:"error"`
}

type transcribeResult struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

type httpInferenceAdapter struct {
	client *utils.HTTPClient

	summarizeURL  string
	transcribeURL string

	logger *logger.Logger
}

// NewHTTPInferenceAdapter constructs an [InferenceAdapter] backed by resty.
// A zero cfg.RequestTimeout keeps the transport default. An empty URL
// disables the corresponding call.
func NewHTTPInferenceAdapter(cfg config.Adapter, log *logger.Logger) InferenceAdapter {
	client := utils.NewHTTPClient()
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}
	if token := strings.TrimSpace(cfg.APIToken); token != "" {
		client.SetAuthToken(token)
	}

	return &httpInferenceAdapter{
		client:        client,
		summarizeURL:  strings.TrimSpace(cfg.InferenceURL),
		transcribeURL: strings.TrimSpace(cfg.TranscriptionURL),
		logger:        log.WithComponent("inference-adapter"),
	}
}

func (h *httpInferenceAdapter) Enabled() bool {
	return h.summarizeURL != ""
}

// Summarize implements [InferenceAdapter]. It POSTs text with fixed
// generation parameters and expects [{"summary_text": "..."}].
func (h *httpInferenceAdapter) Summarize(ctx context.Context, text string) (string, error) {
	if h.summarizeURL == "" {
		return "", ErrAdapterDisabled
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(summarizeRequest{
			Inputs: text,
			Parameters: summarizeParameters{
				MaxLength: summaryMaxLength,
				MinLength: summaryMinLength,
				DoSample:  false,
			},
		}).
		Post(h.summarizeURL)
	if err != nil {
		return "", fmt.Errorf("%w: summarize request: %v", ErrUpstreamUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return decodeSummary(resp.Body())
}

// Transcribe implements [InferenceAdapter]. It POSTs the raw media bytes and
// expects {"text": "..."}.
func (h *httpInferenceAdapter) Transcribe(ctx context.Context, data []byte, contentType string) (string, error) {
	if h.transcribeURL == "" {
		return "", ErrAdapterDisabled
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Post(h.transcribeURL)
	if err != nil {
		return "", fmt.Errorf("%w: transcribe request: %v", ErrUpstreamUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var result transcribeResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("%w: decode transcription: %v", ErrUpstreamPayload, err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrUpstreamPayload, result.Error)
	}
	if strings.TrimSpace(result.Text) == "" {
		return "", fmt.Errorf("%w: empty transcription", ErrUpstreamPayload)
	}

	h.logger.Debug().Int("chars", len(result.Text)).Msg("transcription received")
	return strings.TrimSpace(result.Text), nil
}

func decodeSummary(body []byte) (string, error) {
	var results []summarizeResult
	if err := json.Unmarshal(body, &results); err != nil {
		var upstream upstreamError
		if jsonErr := json.Unmarshal(body, &upstream); jsonErr == nil && upstream.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrUpstreamPayload, upstream.Error)
		}
		return "", fmt.Errorf("%w: decode summary: %v", ErrUpstreamPayload, err)
	}

	if len(results) == 0 || strings.TrimSpace(results[0].SummaryText) == "" {
		return "", fmt.Errorf("%w: missing summary_text", ErrUpstreamPayload)
	}
	return strings.TrimSpace(results[0].SummaryText), nil
}
