package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"plastic-world/internal/checkout"
	"plastic-world/internal/model"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles checkout confirmation requests.
type CheckoutHandler struct {
	service *checkout.Service
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service *checkout.Service, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// Complete handles POST /api/checkout requests.
func (h *CheckoutHandler) Complete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var customer model.CustomerDetails
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	if customer.Name == "" || customer.Phone == "" || customer.Address == "" {
		writeError(w, http.StatusBadRequest, "name, phone and address are required", h.logger)
		return
	}

	result, err := h.service.CompleteOrder(r.Context(), customer)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeDomainError(w, http.StatusUnprocessableEntity, domainErr, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to complete order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}
