// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and stores the caller's user ID and email
// in the request context before delegating to the next handler.
//
// A request without the header is rejected with 401 Unauthorized. A header
// that is malformed, or that carries an expired or otherwise invalid token, is
// rejected with 403 Forbidden.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Msg("malformed authorization header")
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusForbidden)
			return
		}

		ctx = utils.WithUser(ctx, token.UserID, token.Claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
