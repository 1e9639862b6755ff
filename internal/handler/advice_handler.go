package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync/atomic"

	"plastic-world/internal/advice"
	"plastic-world/internal/store"

	"github.com/rs/zerolog"
)

// AdviceHandler forwards shopper questions to the advice client. A single
// in-flight request is allowed at a time, mirroring the storefront's
// disabled-button behaviour while a question is pending.
type AdviceHandler struct {
	client   *advice.Client
	store    *store.Store
	inFlight atomic.Bool
	logger   zerolog.Logger
}

// NewAdviceHandler creates a new advice handler.
func NewAdviceHandler(client *advice.Client, st *store.Store, logger zerolog.Logger) *AdviceHandler {
	return &AdviceHandler{
		client: client,
		store:  st,
		logger: logger.With().Str("handler", "advice").Logger(),
	}
}

// Ask handles POST /api/advice requests.
func (h *AdviceHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required", h.logger)
		return
	}

	if !h.inFlight.CompareAndSwap(false, true) {
		writeError(w, http.StatusTooManyRequests, "an advice request is already in progress", h.logger)
		return
	}
	defer h.inFlight.Store(false)

	text := h.client.GetAdvice(r.Context(), req.Prompt, h.store.Products())

	writeJSON(w, http.StatusOK, map[string]string{"advice": text})
}
