package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-study-buddy/internal/logger"
	"github.com/MKhiriev/go-study-buddy/internal/utils"
	"github.com/MKhiriev/go-study-buddy/models"
	"github.com/go-chi/chi/v5"
)

const (
	defaultHistoryLimit = 20
	multipartMemory     = 1 << 20
	uploadFormField     = "file"
	featuresFormField   = "features"
)

func (h *Handler) process(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	var req models.ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.services.StudyService.Process(ctx, models.StudyInput{
		UserID:    userID,
		Text:      req.Text,
		Features:  req.Features,
		InputType: models.InputTypeText,
	})
	if err != nil {
		writeServiceError(w, r, err, "text processing failed")
		return
	}

	utils.WriteJSON(w, toProcessResponse(session), http.StatusOK)
}

func (h *Handler) processFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeServiceError(w, r, fmt.Errorf("%w: %w", ErrUploadTooLarge, err), "upload rejected")
			return
		}
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrNoFileUploaded, err), "upload rejected")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrNoFileUploaded, err), "upload rejected")
		return
	}
	defer file.Close()

	features, err := parseFeatures(r.FormValue(featuresFormField))
	if err != nil {
		writeServiceError(w, r, err, "upload rejected")
		return
	}

	path, err := h.saveUpload(file, header.Filename)
	if err != nil {
		writeServiceError(w, r, err, "error saving upload")
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("error removing upload")
		}
	}()

	log.Debug().
		Str("file", header.Filename).
		Int64("size", header.Size).
		Msg("upload received")

	session, err := h.services.StudyService.ProcessFile(ctx, models.FileInput{
		UserID:      userID,
		Path:        path,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Features:    features,
	})
	if err != nil {
		writeServiceError(w, r, err, "file processing failed")
		return
	}

	utils.WriteJSON(w, toProcessResponse(session), http.StatusOK)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	sessions, err := h.services.StudyService.History(ctx, userID, limit)
	if err != nil {
		writeServiceError(w, r, err, "error loading history")
		return
	}
	if sessions == nil {
		sessions = []models.StudySession{}
	}

	utils.WriteJSON(w, models.HistoryResponse{Sessions: sessions, Count: len(sessions)}, http.StatusOK)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	session, err := h.services.StudyService.Session(ctx, chi.URLParam(r, "id"), userID)
	if err != nil {
		writeServiceError(w, r, err, "error loading study session")
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
		return
	}

	stats, err := h.services.StudyService.Stats(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err, "error computing stats")
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

// saveUpload copies an uploaded file into the upload directory and returns
// the path of the copy. The caller removes it.
func (h *Handler) saveUpload(src multipart.File, fileName string) (string, error) {
	if h.uploadDir != "" {
		if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
			return "", fmt.Errorf("error creating upload dir: %w", err)
		}
	}

	dst, err := os.CreateTemp(h.uploadDir, "upload-*"+filepath.Ext(filepath.Base(fileName)))
	if err != nil {
		return "", fmt.Errorf("error creating upload file: %w", err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("error writing upload file: %w", err)
	}
	if err = dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("error closing upload file: %w", err)
	}

	return dst.Name(), nil
}

// parseFeatures accepts either a JSON array (["summary","quiz"]) or a comma
// separated list (summary,quiz). An empty value yields no features.
func parseFeatures(raw string) ([]models.Feature, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if strings.HasPrefix(raw, "[") {
		var features []models.Feature
		if err := json.Unmarshal([]byte(raw), &features); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFeatures, err)
		}
		return features, nil
	}

	var features []models.Feature
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			features = append(features, models.Feature(part))
		}
	}
	return features, nil
}

func toProcessResponse(session models.StudySession) models.ProcessResponse {
	return models.ProcessResponse{
		SessionID: session.ID,
		Results:   session.Results,
		InputType: session.InputType,
		WordCount: session.WordCount,
		FileName:  session.FileName,
	}
}
