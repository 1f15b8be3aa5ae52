package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/MaiadaMuhammed/AYN/pkg/errors"
	"github.com/MaiadaMuhammed/AYN/pkg/httputil"
	"github.com/MaiadaMuhammed/AYN/pkg/validator"

	"github.com/MaiadaMuhammed/AYN/internal/checkout"
	"github.com/MaiadaMuhammed/AYN/internal/state"
)

// CheckoutHandler drives the checkout flow: coupon validation, order
// creation, order history, and the PDF receipt.
type CheckoutHandler struct {
	checkout *checkout.Service
	state    *state.Manager
	logger   *slog.Logger
}

// NewCheckoutHandler creates a checkout HTTP handler.
func NewCheckoutHandler(svc *checkout.Service, st *state.Manager, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc, state: st, logger: logger}
}

// CouponRequest is the JSON body for coupon validation.
type CouponRequest struct {
	Code string `json:"code" validate:"required"`
}

type couponView struct {
	Valid   bool    `json:"valid"`
	Percent float64 `json:"percent,omitempty"`
}

// ValidateCoupon handles POST /api/v1/checkout/coupon.
func (h *CheckoutHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	var req CouponRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	percent, valid := checkout.ValidateCoupon(req.Code)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: couponView{Valid: valid, Percent: percent}})
}

// CreateOrder handles POST /api/v1/checkout. Requires a session.
func (h *CheckoutHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req checkout.Input
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	order, err := h.checkout.CreateOrder(r.Context(), userFromContext(r.Context()), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}

// ListOrders handles GET /api/v1/orders.
func (h *CheckoutHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.state.Orders(r.Context(), userFromContext(r.Context()))
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: orders})
}

// Receipt handles GET /api/v1/orders/{orderId}/receipt, answering with the
// rendered PDF.
func (h *CheckoutHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	user := userFromContext(r.Context())

	for _, order := range h.state.Orders(r.Context(), user) {
		if order.ID != orderID {
			continue
		}

		pdf, err := checkout.Receipt(order)
		if err != nil {
			httputil.WriteError(w, r, apperrors.Internal(err), h.logger)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="receipt.pdf"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
		return
	}

	httputil.WriteError(w, r, apperrors.NotFound("order", orderID), h.logger)
}
