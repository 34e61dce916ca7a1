package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON writes data as a JSON response
func writeJSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to encode JSON response", "error", err)
		writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeText writes a plain-text response
func writeText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}
