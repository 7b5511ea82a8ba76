// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-buddy/internal/config"
	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) InferenceAdapter {
	t.Helper()
	return NewHTTPInferenceAdapter(config.Adapter{
		InferenceURL:     serverURL + "/summarize",
		TranscriptionURL: serverURL + "/transcribe",
		APIToken:         "hf_test",
		RequestTimeout:   2 * time.Second,
	}, logger.Nop())
}

// ── Summarize ───────────────────────────────────────────────────────────────

func TestSummarize_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/summarize", r.URL.Path)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))

		var req summarizeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "some long text", req.Inputs)
		assert.Equal(t, 150, req.Parameters.MaxLength)
		assert.Equal(t, 30, req.Parameters.MinLength)
		assert.False(t, req.Parameters.DoSample)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"summary_text":"  a short summary "}]`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Summarize(context.Background(), "some long text")
	require.NoError(t, err)
	assert.Equal(t, "a short summary", got)
}

func TestSummarize_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "service unavailable", status: http.StatusServiceUnavailable, body: `{"error":"model loading"}`, wantErr: ErrUpstreamUnavailable},
		{name: "bad token", status: http.StatusUnauthorized, body: "unauthorized", wantErr: ErrUnauthorized},
		{name: "rate limited", status: http.StatusTooManyRequests, wantErr: ErrRateLimited},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrUpstreamStatus},
		{name: "error payload", status: http.StatusOK, body: `{"error":"input too long"}`, wantErr: ErrUpstreamPayload},
		{name: "empty array", status: http.StatusOK, body: `[]`, wantErr: ErrUpstreamPayload},
		{name: "missing field", status: http.StatusOK, body: `[{"generated_text":"x"}]`, wantErr: ErrUpstreamPayload},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantErr: ErrUpstreamPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Summarize(context.Background(), "text")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrUpstream)
		})
	}
}

func TestSummarize_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Summarize(context.Background(), "text")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestSummarize_Disabled(t *testing.T) {
	a := NewHTTPInferenceAdapter(config.Adapter{}, logger.Nop())
	assert.False(t, a.Enabled())

	_, err := a.Summarize(context.Background(), "text")
	assert.ErrorIs(t, err, ErrAdapterDisabled)
}

// ── Transcribe ──────────────────────────────────────────────────────────────

func TestTranscribe_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transcribe", r.URL.Path)
		assert.Equal(t, "audio/mpeg", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, []byte{1, 2, 3}, body)

		_, _ = w.Write([]byte(`{"text":" hello from the lecture "}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Transcribe(context.Background(), []byte{1, 2, 3}, "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, "hello from the lecture", got)
}

func TestTranscribe_EmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":""}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Transcribe(context.Background(), []byte{1}, "audio/wav")
	assert.ErrorIs(t, err, ErrUpstreamPayload)
}

func TestTranscribe_Disabled(t *testing.T) {
	a := NewHTTPInferenceAdapter(config.Adapter{InferenceURL: "http://localhost"}, logger.Nop())
	assert.True(t, a.Enabled())

	_, err := a.Transcribe(context.Background(), []byte{1}, "audio/wav")
	assert.ErrorIs(t, err, ErrAdapterDisabled)
}
