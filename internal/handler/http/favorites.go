package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/MaiadaMuhammed/AYN/pkg/errors"
	"github.com/MaiadaMuhammed/AYN/pkg/httputil"
	"github.com/MaiadaMuhammed/AYN/pkg/validator"

	"github.com/MaiadaMuhammed/AYN/internal/catalog"
	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/internal/state"
)

// FavoritesHandler exposes the state manager's favorites operations.
// Favorites work with or without a session.
type FavoritesHandler struct {
	state   *state.Manager
	catalog *catalog.Accessor
	logger  *slog.Logger
}

// NewFavoritesHandler creates a favorites HTTP handler.
func NewFavoritesHandler(st *state.Manager, c *catalog.Accessor, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{state: st, catalog: c, logger: logger}
}

// AddFavoriteRequest is the JSON body for favoriting a product.
type AddFavoriteRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
}

type favoritesView struct {
	Items  domain.Favorites `json:"items"`
	Notice *state.Notice    `json:"notice,omitempty"`
}

// List handles GET /api/v1/favorites.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	favorites := h.state.Favorites(r.Context(), userFromContext(r.Context()))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: favoritesView{Items: favorites}})
}

// Add handles POST /api/v1/favorites. Adding an already-favorited product is
// a no-op whose Notice says so.
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddFavoriteRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, found := h.catalog.ByID(req.ProductID)
	if !found {
		httputil.WriteError(w, r, apperrors.NotFound("product", strconv.Itoa(req.ProductID)), h.logger)
		return
	}

	favorites, notice := h.state.AddToFavorites(r.Context(), userFromContext(r.Context()), product)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: favoritesView{Items: favorites, Notice: &notice}})
}

// Remove handles DELETE /api/v1/favorites/{productId}. Removing an absent
// product is safe and still answers with the removal Notice.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseIntID(w, chi.URLParam(r, "productId"))
	if !ok {
		return
	}

	favorites, notice := h.state.RemoveFromFavorites(r.Context(), userFromContext(r.Context()), productID)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: favoritesView{Items: favorites, Notice: &notice}})
}
