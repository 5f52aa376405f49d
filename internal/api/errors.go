package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tejavath/vaanibill/internal/storage"
)

// errorEnvelope is the uniform error body: {"error": "..."}.
type errorEnvelope struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorEnvelope{Error: msg})
}

// writeStoreError maps the storage error taxonomy onto status codes:
// validation 400, not found 404, anything else a 500 with a generic
// message (details go to the log, not the wire).
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *storage.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		slog.Error("storage failure", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "storage failure")
	}
}
