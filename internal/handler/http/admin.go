package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/MaiadaMuhammed/AYN/pkg/errors"
	"github.com/MaiadaMuhammed/AYN/pkg/httputil"
	"github.com/MaiadaMuhammed/AYN/pkg/validator"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/internal/store"
)

// AdminHandler is the admin product editor: CRUD over the customProducts
// store key. Custom products are a separate list that is never merged into
// the catalog accessor's feed snapshot.
type AdminHandler struct {
	kv     store.KV
	logger *slog.Logger
}

// NewAdminHandler creates the admin HTTP handler.
func NewAdminHandler(kv store.KV, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{kv: kv, logger: logger}
}

// CustomProductRequest is the JSON body for creating or updating a custom
// product.
type CustomProductRequest struct {
	Title              string   `json:"title" validate:"required,min=1,max=500"`
	Description        string   `json:"description"`
	Price              float64  `json:"price" validate:"required,gt=0"`
	DiscountPercentage float64  `json:"discountPercentage" validate:"gte=0,lte=100"`
	Stock              int      `json:"stock" validate:"gte=0"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category" validate:"required"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
	Tags               []string `json:"tags"`
	Sizes              []string `json:"sizes"`
}

func (req CustomProductRequest) toProduct(id int) domain.Product {
	return domain.Product{
		ID:                 id,
		Title:              req.Title,
		Description:        req.Description,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Stock:              req.Stock,
		Brand:              req.Brand,
		Category:           req.Category,
		Thumbnail:          req.Thumbnail,
		Images:             req.Images,
		Tags:               req.Tags,
		Sizes:              req.Sizes,
	}
}

func (h *AdminHandler) load(r *http.Request) []domain.Product {
	return store.Get(r.Context(), h.kv, h.logger, store.KeyCustomProducts, []domain.Product{})
}

func (h *AdminHandler) save(w http.ResponseWriter, r *http.Request, products []domain.Product) bool {
	if err := store.Set(r.Context(), h.kv, h.logger, store.KeyCustomProducts, products); err != nil {
		httputil.WriteError(w, r, apperrors.Internal(err), h.logger)
		return false
	}
	return true
}

// List handles GET /api/v1/admin/products.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.load(r)})
}

// Create handles POST /api/v1/admin/products. New products get a
// millisecond-timestamp ID.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomProductRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product := req.toProduct(int(time.Now().UnixMilli()))
	products := append(h.load(r), product)
	if !h.save(w, r, products) {
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: product})
}

// Update handles PUT /api/v1/admin/products/{id}.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseIntID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req CustomProductRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	products := h.load(r)
	for i := range products {
		if products[i].ID != id {
			continue
		}
		products[i] = req.toProduct(id)
		if !h.save(w, r, products) {
			return
		}
		httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: products[i]})
		return
	}

	httputil.WriteError(w, r, apperrors.NotFound("custom product", strconv.Itoa(id)), h.logger)
}

// Delete handles DELETE /api/v1/admin/products/{id}. Deleting an unknown
// product is a no-op.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseIntID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	products := h.load(r)
	kept := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if !h.save(w, r, kept) {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]int{"remaining": len(kept)}})
}
