// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the hosted inference API used to
// summarize text and transcribe audio.
//
// Every failure is reported as an error wrapping [ErrUpstream], so callers
// can fall back to local processing with a single errors.Is check.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/inference_adapter_mock.go -package=mock

// InferenceAdapter performs single-attempt calls to remote models.
// Implementations never retry.
type InferenceAdapter interface {
	// Summarize returns an abstractive summary of text.
	Summarize(ctx context.Context, text string) (string, error)

	// Transcribe converts raw audio or video bytes into text.
	Transcribe(ctx context.Context, data []byte, contentType string) (string, error)

	// Enabled reports whether a summarization endpoint is configured.
	Enabled() bool
}
