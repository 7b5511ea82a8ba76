// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-buddy/models"
)

const validStudyText = "Photosynthesis is the process plants use to turn light into energy."

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

// ── Dispatch ────────────────────────────────────────────────────────────────

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}), ErrUnsupportedType)
}

func TestValidate_PointerAndValue(t *testing.T) {
	v := NewRequestValidator()
	req := models.LoginRequest{Email: "ann@example.com", Password: "secret"}

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

// ── Register ────────────────────────────────────────────────────────────────

func TestValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
		want error
	}{
		{
			name: "valid",
			req:  models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "secret"},
		},
		{
			name: "missing name",
			req:  models.RegisterRequest{Email: "ann@example.com", Password: "secret"},
			want: ErrEmptyName,
		},
		{
			name: "name too long",
			req:  models.RegisterRequest{Name: strings.Repeat("a", 101), Email: "ann@example.com", Password: "secret"},
			want: ErrNameTooLong,
		},
		{
			name: "missing email",
			req:  models.RegisterRequest{Name: "Ann", Password: "secret"},
			want: ErrEmptyEmail,
		},
		{
			name: "bad email",
			req:  models.RegisterRequest{Name: "Ann", Email: "not-an-email", Password: "secret"},
			want: ErrInvalidEmail,
		},
		{
			name: "missing password",
			req:  models.RegisterRequest{Name: "Ann", Email: "ann@example.com"},
			want: ErrEmptyPassword,
		},
		{
			name: "short password",
			req:  models.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "12345"},
			want: ErrPasswordTooShort,
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── Login / Verify ──────────────────────────────────────────────────────────

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Password: "x"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Email: "ann@example.com"}), ErrEmptyPassword)
	// login does not enforce the registration password length
	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "x"}))
}

func TestValidate_VerifyRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.VerifyRequest{}), ErrEmptyToken)
	assert.NoError(t, v.Validate(context.Background(), models.VerifyRequest{Token: "a.b.c"}))
}

// ── Process ─────────────────────────────────────────────────────────────────

func TestValidate_ProcessRequest(t *testing.T) {
	tests := []struct {
		name string
		req  models.ProcessRequest
		want error
	}{
		{
			name: "valid",
			req:  models.ProcessRequest{Text: validStudyText, Features: []models.Feature{models.FeatureSummary, models.FeatureQuiz}},
		},
		{
			name: "empty text",
			req:  models.ProcessRequest{Features: []models.Feature{models.FeatureSummary}},
			want: ErrTextTooShort,
		},
		{
			name: "short text",
			req:  models.ProcessRequest{Text: "too short", Features: []models.Feature{models.FeatureSummary}},
			want: ErrTextTooShort,
		},
		{
			name: "padding does not count",
			req:  models.ProcessRequest{Text: "   twenty nine characters!!   " + strings.Repeat(" ", 40), Features: []models.Feature{models.FeatureSummary}},
			want: ErrTextTooShort,
		},
		{
			name: "nil features",
			req:  models.ProcessRequest{Text: validStudyText},
			want: ErrNoFeaturesRequested,
		},
		{
			name: "empty features",
			req:  models.ProcessRequest{Text: validStudyText, Features: []models.Feature{}},
			want: ErrNoFeaturesRequested,
		},
		{
			name: "unknown feature",
			req:  models.ProcessRequest{Text: validStudyText, Features: []models.Feature{models.FeatureQuiz, "mindmap"}},
			want: ErrUnknownFeature,
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidate_ProcessRequest_ExactlyMinLength(t *testing.T) {
	v := NewRequestValidator()
	req := models.ProcessRequest{Text: strings.Repeat("a", MinTextLength), Features: models.AllFeatures}

	assert.NoError(t, v.Validate(context.Background(), req))
}

func TestValidate_PartialFields(t *testing.T) {
	v := NewRequestValidator()
	req := models.ProcessRequest{Text: validStudyText}

	assert.NoError(t, v.Validate(context.Background(), req, "Text"))
	assert.ErrorIs(t, v.Validate(context.Background(), req, "Features"), ErrNoFeaturesRequested)
}
