package handler

import (
	"net/http"
	"strings"

	"plastic-world/internal/store"

	"github.com/rs/zerolog"
)

// ProductHandler handles public catalogue requests.
type ProductHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(st *store.Store, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		store:  st,
		logger: logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.store.Products())
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, ok := h.store.ProductByID(productID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
