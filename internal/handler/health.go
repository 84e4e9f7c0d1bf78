package handler

import (
	"log/slog"
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		slog.Warn("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:    "unhealthy",
			Message:   "Database unreachable",
			Timestamp: time.Now().UTC(),
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   "Brand Mark API is running",
		Timestamp: time.Now().UTC(),
	})
}
