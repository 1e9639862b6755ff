package handler

import (
	"encoding/json"
	"net/http"

	"plastic-world/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a domain error onto the standard error envelope.
func writeDomainError(w http.ResponseWriter, status int, err *model.DomainError, logger zerolog.Logger) {
	logger.Warn().Str("code", err.Code).Str("error", err.Message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: err.Code, Message: err.Message})
}
