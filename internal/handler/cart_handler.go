package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"plastic-world/internal/cart"
	"plastic-world/internal/model"
	"plastic-world/internal/store"

	"github.com/rs/zerolog"
)

// CartHandler handles cart mutation and inspection requests.
type CartHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(st *store.Store, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		store:  st,
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse is the cart view returned after every cart request.
type cartResponse struct {
	Items []model.CartItem `json:"items"`
	Total int64            `json:"total"`
	Count int              `json:"count"`
}

// addItemResponse extends the cart view with the signal that the cart
// should be opened for the shopper after an add.
type addItemResponse struct {
	cartResponse
	Visible bool `json:"visible"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	h.writeCart(w)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "productId is required", h.logger)
		return
	}

	visible, err := h.store.AddToCart(req.ProductID)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeDomainError(w, http.StatusNotFound, domainErr, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to add to cart", h.logger)
		return
	}

	items := h.store.CartItems()
	writeJSON(w, http.StatusOK, addItemResponse{
		cartResponse: cartResponse{
			Items: items,
			Total: cart.Total(items),
			Count: cart.Count(items),
		},
		Visible: visible,
	})
}

// UpdateItem handles PATCH /api/cart/items/{id} requests, adjusting the
// item's quantity by the signed delta in the body.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := itemID(r)
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	h.store.AdjustCartQuantity(productID, req.Delta)
	h.writeCart(w)
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := itemID(r)
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	h.store.RemoveFromCart(productID)
	h.writeCart(w)
}

func (h *CartHandler) writeCart(w http.ResponseWriter) {
	items := h.store.CartItems()
	writeJSON(w, http.StatusOK, cartResponse{
		Items: items,
		Total: cart.Total(items),
		Count: cart.Count(items),
	})
}

func itemID(r *http.Request) string {
	return strings.TrimPrefix(r.URL.Path, "/api/cart/items/")
}
