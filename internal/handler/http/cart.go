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
	"github.com/MaiadaMuhammed/AYN/internal/pricing"
	"github.com/MaiadaMuhammed/AYN/internal/state"
)

// CartHandler exposes the state manager's cart operations.
type CartHandler struct {
	state   *state.Manager
	catalog *catalog.Accessor
	logger  *slog.Logger
}

// NewCartHandler creates a cart HTTP handler.
func NewCartHandler(st *state.Manager, c *catalog.Accessor, logger *slog.Logger) *CartHandler {
	return &CartHandler{state: st, catalog: c, logger: logger}
}

// AddItemRequest is the JSON body for adding a product to the cart.
type AddItemRequest struct {
	ProductID int    `json:"productId" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// UpdateQuantityRequest is the JSON body for setting an item's quantity.
// Zero and negative values are accepted and passed through as-is.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartView is the cart response: items plus the display subtotal.
type cartView struct {
	Items    domain.Cart   `json:"items"`
	Subtotal float64       `json:"subtotal"`
	Count    int           `json:"count"`
	Notice   *state.Notice `json:"notice,omitempty"`
}

func newCartView(cart domain.Cart, notice *state.Notice) cartView {
	return cartView{
		Items:    cart,
		Subtotal: pricing.Subtotal(cart),
		Count:    cart.ItemCount(),
		Notice:   notice,
	}
}

// Get handles GET /api/v1/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart := h.state.Cart(r.Context(), userFromContext(r.Context()))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartView(cart, nil)})
}

// AddItem handles POST /api/v1/cart/items. The product is resolved from the
// catalog snapshot and embedded by value. Without a session the state
// manager rejects the add and the response carries the login Notice with the
// cart unchanged.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, found := h.catalog.ByID(req.ProductID)
	if !found {
		httputil.WriteError(w, r, apperrors.NotFound("product", strconv.Itoa(req.ProductID)), h.logger)
		return
	}

	user := userFromContext(r.Context())
	cart, notice := h.state.AddToCart(r.Context(), user, product, req.Quantity, domain.CartOptions{
		Size:  req.Size,
		Color: req.Color,
	})

	status := http.StatusOK
	if notice.Variant == state.NoticeDestructive {
		status = http.StatusUnauthorized
	}
	httputil.WriteJSON(w, status, httputil.Response{Data: newCartView(cart, &notice)})
}

// UpdateQuantity handles PUT /api/v1/cart/items/{productId}. It sets the
// quantity on every variant of the product, the same coarse match as
// removal.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseIntID(w, chi.URLParam(r, "productId"))
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart := h.state.UpdateCartQuantity(r.Context(), userFromContext(r.Context()), productID, req.Quantity)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartView(cart, nil)})
}

// RemoveItem handles DELETE /api/v1/cart/items/{productId}. All variants of
// the product are removed.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := httputil.ParseIntID(w, chi.URLParam(r, "productId"))
	if !ok {
		return
	}

	cart := h.state.RemoveFromCart(r.Context(), userFromContext(r.Context()), productID)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartView(cart, nil)})
}

// Clear handles DELETE /api/v1/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.state.ClearCart(r.Context(), userFromContext(r.Context()))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: newCartView(domain.Cart{}, nil)})
}
