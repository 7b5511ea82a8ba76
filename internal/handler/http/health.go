package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-study-buddy/internal/utils"
	"github.com/MKhiriev/go-study-buddy/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	utils.WriteJSON(w, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Version:   h.services.AppInfoService.GetAppVersion(ctx),
		Storage:   h.services.AppInfoService.StorageBackend(ctx),
	}, http.StatusOK)
}
