package router

import (
	"net/http"
	"strings"

	"plastic-world/internal/auth"
	"plastic-world/internal/handler"
	"plastic-world/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	adviceHandler *handler.AdviceHandler,
	adminHandler *handler.AdminHandler,
	sessions *auth.SessionStore,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.GetAll(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes: the collection accepts GET (view) and POST (add); item
	// paths accept PATCH (adjust) and DELETE (remove).
	mux.HandleFunc("/api/cart", cartHandler.Get)
	mux.HandleFunc("/api/cart/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		cartHandler.AddItem(w, r)
	})
	mux.HandleFunc("/api/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPatch:
			cartHandler.UpdateItem(w, r)
		case http.MethodDelete:
			cartHandler.RemoveItem(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/checkout", checkoutHandler.Complete)
	mux.HandleFunc("/api/advice", adviceHandler.Ask)

	// Admin routes; everything except login sits behind AdminAuth.
	mux.HandleFunc("/api/admin/login", adminHandler.Login)
	mux.HandleFunc("/api/admin/orders", adminHandler.Orders)
	mux.HandleFunc("/api/admin/settings/social", adminHandler.SocialSettings)
	mux.HandleFunc("/api/admin/settings/social/test", adminHandler.TestSocialConnection)

	adminProductHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/admin/products/") {
			adminHandler.DeleteProduct(w, r)
			return
		}
		adminHandler.SaveProduct(w, r)
	}
	mux.HandleFunc("/api/admin/products", adminProductHandler)
	mux.HandleFunc("/api/admin/products/", adminProductHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> AdminAuth
	var h http.Handler = mux
	h = middleware.AdminAuth(sessions, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
