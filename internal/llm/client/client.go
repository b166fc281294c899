package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fastwrite/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultEndpoint is the hosted generation API.
const DefaultEndpoint = "https://fastwrite-api.onrender.com/generate"

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 16 << 20

// GenerationClient submits a payload to the remote generation endpoint. Errors returned
// are always members of the SubmissionError union.
type GenerationClient interface {
	Generate(ctx context.Context, payload models.SubmissionPayload) (*models.GenerationResponse, error)
}

type HTTPClient struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewHTTPClient(endpoint string, httpClient *http.Client) *HTTPClient {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{Endpoint: endpoint, HTTPClient: httpClient}
}

type errorBody struct {
	Message string `json:"message"`
}

// Generate posts payload and classifies the answer. The caller owns the deadline:
// a cancelled or expired ctx is reported as *TimeoutError.
func (c *HTTPClient) Generate(ctx context.Context, payload models.SubmissionPayload) (*models.GenerationResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &UnknownFault{Cause: fmt.Errorf("encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &UnknownFault{Cause: fmt.Errorf("build request: %w", err)}
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log.Debug().
		Str("request_id", requestID).
		Str("endpoint", c.Endpoint).
		Str("provider", payload.ProviderID).
		Str("model", payload.ModelID).
		Int("prompt_bytes", len(payload.Prompt)).
		Msg("Posting generation request")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}

	log.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Int("body_bytes", len(raw)).
		Msg("Generation response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(resp.StatusCode, raw)
	}

	var out models.GenerationResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &UnknownFault{Cause: fmt.Errorf("decode generation response: %w", err)}
	}
	return &out, nil
}

func classifyStatus(status int, raw []byte) SubmissionError {
	if status == http.StatusTooManyRequests {
		return &RateLimitError{StatusCode: status}
	}
	var parsed errorBody
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ServerError{StatusCode: status}
	}
	return &ServerError{StatusCode: status, Message: strings.TrimSpace(parsed.Message)}
}

func classifyTransportError(ctx context.Context, err error) SubmissionError {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &TimeoutError{Cause: ctxErr}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &TimeoutError{Cause: err}
	}
	return &UnknownFault{Cause: err}
}
