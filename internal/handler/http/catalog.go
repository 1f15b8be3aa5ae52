package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/MaiadaMuhammed/AYN/pkg/errors"
	"github.com/MaiadaMuhammed/AYN/pkg/httputil"
	"github.com/MaiadaMuhammed/AYN/pkg/pagination"

	"github.com/MaiadaMuhammed/AYN/internal/catalog"
	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/internal/pricing"
)

// CatalogHandler serves read-only catalog queries off the cached feed
// snapshot.
type CatalogHandler struct {
	catalog *catalog.Accessor
	logger  *slog.Logger
}

// NewCatalogHandler creates a catalog HTTP handler.
func NewCatalogHandler(c *catalog.Accessor, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: c, logger: logger}
}

// productView decorates a product with its discounted display price.
type productView struct {
	domain.Product
	DisplayPrice float64  `json:"displayPrice"`
	Colors       []string `json:"colors,omitempty"`
}

func toView(p domain.Product) productView {
	return productView{
		Product:      p,
		DisplayPrice: pricing.DisplayPrice(p),
		Colors:       p.Colors(),
	}
}

func toViews(products []domain.Product) []productView {
	views := make([]productView, len(products))
	for i, p := range products {
		views[i] = toView(p)
	}
	return views
}

// List handles GET /api/v1/products with optional filter, sort, and
// pagination query parameters.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	params := pagination.FromRequest(r)

	products := filter.Apply(h.catalog.All())
	page := pagination.Slice(products, params)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: pagination.NewResult(toViews(page), len(products), params),
	})
}

// Get handles GET /api/v1/products/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseIntID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	product, found := h.catalog.ByID(id)
	if !found {
		httputil.WriteError(w, r, apperrors.NotFound("product", chi.URLParam(r, "id")), h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toView(product)})
}

// ByCategory handles GET /api/v1/categories/{category}/products. The
// category segment may be the display name or its slug.
func (h *CatalogHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: toViews(h.catalog.ByCategory(category)),
	})
}

// Search handles GET /api/v1/products/search?q=...
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: toViews(h.catalog.Search(query)),
	})
}

// Categories handles GET /api/v1/categories.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.catalog.Categories()})
}

// Refresh handles POST /api/v1/admin/catalog/refresh, forcing a feed
// refetch.
func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Refresh(r.Context()); err != nil {
		httputil.WriteError(w, r, apperrors.Wrap(err, "refresh catalog"), h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: map[string]int{"products": len(h.catalog.All())},
	})
}
