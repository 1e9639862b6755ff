package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"plastic-world/internal/admin"
	"plastic-world/internal/auth"
	"plastic-world/internal/model"
	"plastic-world/internal/settings"
	"plastic-world/internal/social"
	"plastic-world/internal/store"

	"github.com/rs/zerolog"
)

// AdminHandler handles the back-office surface: login, product CRUD,
// order history and social settings.
type AdminHandler struct {
	service       *admin.Service
	store         *store.Store
	authenticator auth.Authenticator
	settings      *settings.Store
	social        *social.Client
	logger        zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	service *admin.Service,
	st *store.Store,
	authenticator auth.Authenticator,
	settingsStore *settings.Store,
	socialClient *social.Client,
	logger zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		service:       service,
		store:         st,
		authenticator: authenticator,
		settings:      settingsStore,
		social:        socialClient,
		logger:        logger.With().Str("handler", "admin").Logger(),
	}
}

// Login handles POST /api/admin/login requests.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	session, err := h.authenticator.Authenticate(req.Username, req.Password)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeDomainError(w, http.StatusUnauthorized, domainErr, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "login failed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// saveProductRequest carries a product draft plus the workflow decisions.
type saveProductRequest struct {
	Product  model.Product `json:"product"`
	AutoPost bool          `json:"autoPost"`
	// OnPostFailure is the operator's pre-answered fallback decision:
	// "proceed" keeps the local save when posting fails, anything else
	// aborts.
	OnPostFailure string `json:"onPostFailure"`
}

// SaveProduct handles POST /api/admin/products requests.
func (h *AdminHandler) SaveProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req saveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	if req.Product.Name == "" {
		writeError(w, http.StatusBadRequest, "product name is required", h.logger)
		return
	}

	prompter := admin.StaticPrompter{
		LocalSave: admin.ParseDecision(req.OnPostFailure),
		Delete:    admin.Abort,
	}

	result, err := h.service.SaveProduct(r.Context(), req.Product, req.AutoPost, prompter)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			status := http.StatusConflict
			if domainErr.Code == model.ErrCodeProductNotFound {
				status = http.StatusNotFound
			}
			writeDomainError(w, status, domainErr, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to save product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// DeleteProduct handles DELETE /api/admin/products/{id} requests. The
// operator's confirmation arrives as the "confirm=true" query parameter.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimPrefix(r.URL.Path, "/api/admin/products/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	decision := admin.Abort
	if r.URL.Query().Get("confirm") == "true" {
		decision = admin.Proceed
	}

	removed, err := h.service.DeleteProduct(r.Context(), productID, admin.StaticPrompter{Delete: decision})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

// Orders handles GET /api/admin/orders requests, returning the history
// most recent first.
func (h *AdminHandler) Orders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.store.Orders())
}

// SocialSettings handles GET and PUT /api/admin/settings/social requests.
// The access token is never echoed back in full.
func (h *AdminHandler) SocialSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		creds, err := h.settings.Load()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load settings", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"pageId":     creds.PageID,
			"configured": creds.Configured(),
		})

	case http.MethodPut:
		var creds settings.SocialCredentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body", h.logger)
			return
		}

		if creds.PageID == "" || creds.AccessToken == "" {
			writeError(w, http.StatusBadRequest, "pageId and accessToken are required", h.logger)
			return
		}

		if err := h.settings.Save(creds); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to save settings", h.logger)
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"saved": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// TestSocialConnection handles POST /api/admin/settings/social/test
// requests, validating the stored credentials against the page.
func (h *AdminHandler) TestSocialConnection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	info, err := h.social.TestConnection(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{
			Error:   model.ErrCodePostingFailed,
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, info)
}
