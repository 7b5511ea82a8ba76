package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/internal/utils"
	"github.com/MKhiriev/go-study-buddy/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{
		Message: "user registered successfully",
		Token:   token.SignedString,
		User:    user.Public(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "user login failed")
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.AuthResponse{
		Message: "login successful",
		Token:   token.SignedString,
		User:    user.Public(),
	}, http.StatusOK)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Verify(ctx, req.Token)
	if err != nil {
		writeServiceError(w, r, err, "token verification failed")
		return
	}

	utils.WriteJSON(w, models.VerifyResponse{Valid: true, User: user.Public()}, http.StatusOK)
}
