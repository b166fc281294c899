package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fastwrite/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() models.SubmissionPayload {
	return models.SubmissionPayload{
		RepositoryReference: "https://example.com/org/repo",
		SecondaryReference:  models.NotApplicable,
		ProviderID:          "google",
		ModelID:             "gemini-2.0-flash",
		Secret:              "secret",
		Prompt:              "prompt",
	}
}

func TestGenerate_PostsJSONPayload(t *testing.T) {
	var got models.SubmissionPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"text_content":"# Doc","visual_content":"graph TD"}`))
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, srv.Client()).Generate(context.Background(), samplePayload())
	require.NoError(t, err)
	assert.Equal(t, "# Doc", resp.TextContent)
	assert.Equal(t, "graph TD", resp.VisualContent)
	assert.Equal(t, samplePayload(), got)
}

func TestGenerate_RateLimitedDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, srv.Client()).Generate(context.Background(), samplePayload())

	var rl *RateLimitError
	require.ErrorAs(t, err, &rl)
	assert.Equal(t, "Rate limit exceeded. Please try again later.", err.Error())
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerate_ServerErrorMessages(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"server message", http.StatusBadRequest, `{"message":"invalid api key"}`, "invalid api key"},
		{"malformed body", http.StatusInternalServerError, `<html>oops</html>`, "Server error: 500"},
		{"missing message", http.StatusBadGateway, `{"error":"x"}`, "Server error: 502"},
		{"empty body", http.StatusServiceUnavailable, ``, "Server error: 503"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewHTTPClient(srv.URL, srv.Client()).Generate(context.Background(), samplePayload())

			var se *ServerError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.status, se.StatusCode)
			assert.Equal(t, tc.expected, err.Error())
		})
	}
}

func TestGenerate_TimeoutCancelsRequest(t *testing.T) {
	cancelled := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-r.Context().Done():
			close(cancelled)
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHTTPClient(srv.URL, srv.Client()).Generate(ctx, samplePayload())

	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, "Request timed out. The server might be overloaded.", err.Error())

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("server never observed the cancellation")
	}
}

func TestGenerate_UndecodableSuccessBodyIsUnknownFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, srv.Client()).Generate(context.Background(), samplePayload())

	var uf *UnknownFault
	require.ErrorAs(t, err, &uf)
	assert.Contains(t, err.Error(), "decode generation response")
}

func TestGenerate_UnreachableEndpointIsUnknownFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPClient(url, nil).Generate(context.Background(), samplePayload())

	se := AsSubmissionError(err)
	require.NotNil(t, se)
	assert.Equal(t, KindUnknown, se.Kind())
	assert.NotEmpty(t, se.Error())
}
