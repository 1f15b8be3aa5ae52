// Package checkout turns the current cart into an order: coupon validation,
// order creation through the state manager, and a PDF receipt.
package checkout

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/MaiadaMuhammed/AYN/pkg/errors"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/internal/pricing"
	"github.com/MaiadaMuhammed/AYN/internal/state"
)

// The one supported coupon: AYN20 gives 20% off the subtotal, applied once.
const (
	CouponCode    = "AYN20"
	CouponPercent = 20.0
)

// Input is the checkout form. The two-step wizard state stays with the
// caller; only the final submission reaches this service.
type Input struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address" validate:"required"`
	Payment    string `json:"payment" validate:"required,oneof=card cod"`
	CouponCode string `json:"couponCode,omitempty"`
}

// Service creates orders from the session's cart.
type Service struct {
	state  *state.Manager
	logger *slog.Logger
}

// NewService creates a checkout service on top of the state manager.
func NewService(st *state.Manager, logger *slog.Logger) *Service {
	return &Service{state: st, logger: logger}
}

// ValidateCoupon normalizes and checks a coupon code, returning the discount
// percentage it grants.
func ValidateCoupon(code string) (float64, bool) {
	if strings.ToUpper(strings.TrimSpace(code)) == CouponCode {
		return CouponPercent, true
	}
	return 0, false
}

// CreateOrder snapshots the cart into a pending order, appends it to the
// order history, and clears the cart. An empty cart or an unknown coupon
// rejects the checkout without touching any state.
func (s *Service) CreateOrder(ctx context.Context, user *domain.User, in Input) (domain.Order, error) {
	cart := s.state.Cart(ctx, user)
	if len(cart) == 0 {
		return domain.Order{}, apperrors.InvalidInput("cart is empty")
	}

	subtotal := pricing.Subtotal(cart)
	total := subtotal
	var discount float64
	var coupon string

	if in.CouponCode != "" {
		percent, ok := ValidateCoupon(in.CouponCode)
		if !ok {
			return domain.Order{}, apperrors.InvalidInput("invalid coupon code")
		}
		discount, total = pricing.ApplyDiscount(subtotal, percent)
		coupon = CouponCode
	}

	order := domain.Order{
		ID:              uuid.New().String(),
		Items:           append([]domain.CartItem(nil), cart...),
		CustomerName:    in.Name,
		CustomerEmail:   in.Email,
		ShippingAddress: in.Address,
		PaymentMethod:   in.Payment,
		Subtotal:        subtotal,
		Discount:        discount,
		CouponCode:      coupon,
		Total:           total,
		Date:            time.Now().UTC(),
		Status:          domain.OrderStatusPending,
	}

	s.state.AppendOrder(ctx, user, order)
	s.state.ClearCart(ctx, user)

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.Total),
	)
	return order, nil
}
