package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MaiadaMuhammed/AYN/pkg/health"
	"github.com/MaiadaMuhammed/AYN/pkg/middleware"

	"github.com/MaiadaMuhammed/AYN/internal/catalog"
	"github.com/MaiadaMuhammed/AYN/internal/checkout"
	"github.com/MaiadaMuhammed/AYN/internal/session"
	"github.com/MaiadaMuhammed/AYN/internal/state"
	"github.com/MaiadaMuhammed/AYN/internal/store"
)

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	State          *state.Manager
	Catalog        *catalog.Accessor
	Checkout       *checkout.Service
	Sessions       *session.Registry
	KV             store.KV
	Health         *health.Handler
	Logger         *slog.Logger
	AllowedOrigins []string
	PprofCIDRs     []string
}

// NewRouter creates the chi router with all storefront routes registered.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	if len(deps.AllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = deps.AllowedOrigins
	}

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(deps.Logger))
	r.Use(middleware.PrometheusMetrics())
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS(corsCfg))
	r.Use(SessionFromHeader(deps.Sessions))

	// Health and metrics endpoints
	r.Get("/health/live", deps.Health.LivenessHandler())
	r.Get("/health/ready", deps.Health.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, deps.PprofCIDRs, deps.Logger)

	catalogHandler := NewCatalogHandler(deps.Catalog, deps.Logger)
	cartHandler := NewCartHandler(deps.State, deps.Catalog, deps.Logger)
	favoritesHandler := NewFavoritesHandler(deps.State, deps.Catalog, deps.Logger)
	preferencesHandler := NewPreferencesHandler(deps.State, deps.Logger)
	authHandler := NewAuthHandler(deps.Sessions, deps.Logger)
	checkoutHandler := NewCheckoutHandler(deps.Checkout, deps.State, deps.Logger)
	adminHandler := NewAdminHandler(deps.KV, deps.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog: read-only, cacheable.
		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(300))

			r.Get("/products", catalogHandler.List)
			r.Get("/products/search", catalogHandler.Search)
			r.Get("/products/{id}", catalogHandler.Get)
			r.Get("/categories", catalogHandler.Categories)
			r.Get("/categories/{category}/products", catalogHandler.ByCategory)
		})

		// Auth
		r.Post("/auth/sign-in", authHandler.SignIn)
		r.Post("/auth/sign-out", authHandler.SignOut)
		r.Get("/auth/me", authHandler.Me)

		// Cart. Reads and coarse mutations work anonymously; the add gate
		// lives in the state manager, which answers with the login Notice.
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{productId}", cartHandler.UpdateQuantity)
			r.Delete("/items/{productId}", cartHandler.RemoveItem)
		})

		// Favorites
		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", favoritesHandler.List)
			r.Post("/", favoritesHandler.Add)
			r.Delete("/{productId}", favoritesHandler.Remove)
		})

		// Preferences
		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", preferencesHandler.Get)
			r.Post("/language/toggle", preferencesHandler.ToggleLanguage)
			r.Post("/theme/toggle", preferencesHandler.ToggleTheme)
		})

		// Checkout and orders require a session.
		r.Group(func(r chi.Router) {
			r.Use(RequireSession)

			r.Post("/checkout/coupon", checkoutHandler.ValidateCoupon)
			r.Post("/checkout", checkoutHandler.CreateOrder)
			r.Get("/orders", checkoutHandler.ListOrders)
			r.Get("/orders/{orderId}/receipt", checkoutHandler.Receipt)
		})

		// Admin panel: cosmetic allow-list gate.
		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireAdmin)

			r.Get("/products", adminHandler.List)
			r.Post("/products", adminHandler.Create)
			r.Put("/products/{id}", adminHandler.Update)
			r.Delete("/products/{id}", adminHandler.Delete)
			r.Post("/catalog/refresh", catalogHandler.Refresh)
		})
	})

	return r
}
