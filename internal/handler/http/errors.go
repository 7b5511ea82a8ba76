// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the HTTP layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("access token required")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid or expired token")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoFileUploaded is returned by the upload endpoint when the multipart
	// form carries no "file" part.
	ErrNoFileUploaded = errors.New("no file uploaded")

	// ErrUploadTooLarge is returned when the request body exceeds the
	// configured upload limit.
	ErrUploadTooLarge = errors.New("uploaded file is too large")

	// ErrInvalidFeatures is returned when the "features" form field is
	// neither a JSON array nor a comma separated list.
	ErrInvalidFeatures = errors.New("invalid features")
)
