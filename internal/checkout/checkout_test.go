package checkout

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/internal/state"
	"github.com/MaiadaMuhammed/AYN/internal/store"
)

func newTestService(t *testing.T) (*Service, *state.Manager) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := state.New(store.NewRedis(client), nil, logger)
	return NewService(st, logger), st
}

func checkoutInput() Input {
	return Input{
		Name:    "Maiada",
		Email:   "maiada@example.com",
		Address: "12 Nile St, Cairo",
		Payment: "card",
	}
}

func TestValidateCoupon(t *testing.T) {
	percent, ok := ValidateCoupon("AYN20")
	assert.True(t, ok)
	assert.Equal(t, 20.0, percent)

	// Case-insensitive and trimmed.
	_, ok = ValidateCoupon("  ayn20 ")
	assert.True(t, ok)

	_, ok = ValidateCoupon("SAVE50")
	assert.False(t, ok)
	_, ok = ValidateCoupon("")
	assert.False(t, ok)
}

func TestCreateOrderSnapshotsCartAndClearsIt(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := &domain.User{ID: "u-1", Email: "maiada@example.com"}

	st.AddToCart(ctx, user, domain.Product{ID: 1, Title: "Jacket", Price: 100, DiscountPercentage: 10}, 2, domain.CartOptions{})

	order, err := svc.CreateOrder(ctx, user, checkoutInput())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 180.0, order.Subtotal)
	assert.Equal(t, 180.0, order.Total)
	assert.WithinDuration(t, time.Now().UTC(), order.Date, 5*time.Second)

	assert.Empty(t, st.Cart(ctx, user), "checkout clears the cart")

	orders := st.Orders(ctx, user)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
}

func TestCreateOrderWithCoupon(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := &domain.User{ID: "u-1", Email: "maiada@example.com"}

	st.AddToCart(ctx, user, domain.Product{ID: 1, Title: "Dress", Price: 200}, 1, domain.CartOptions{})

	in := checkoutInput()
	in.CouponCode = "ayn20"

	order, err := svc.CreateOrder(ctx, user, in)
	require.NoError(t, err)

	assert.Equal(t, 200.0, order.Subtotal)
	assert.Equal(t, 40.0, order.Discount)
	assert.Equal(t, 160.0, order.Total)
	assert.Equal(t, CouponCode, order.CouponCode)
}

func TestCreateOrderRejectsUnknownCoupon(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := &domain.User{ID: "u-1", Email: "maiada@example.com"}

	st.AddToCart(ctx, user, domain.Product{ID: 1, Title: "Dress", Price: 200}, 1, domain.CartOptions{})

	in := checkoutInput()
	in.CouponCode = "WRONG"

	_, err := svc.CreateOrder(ctx, user, in)
	require.Error(t, err)
	assert.Len(t, st.Cart(ctx, user), 1, "a rejected checkout leaves the cart alone")
	assert.Empty(t, st.Orders(ctx, user))
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	svc, _ := newTestService(t)
	user := &domain.User{ID: "u-1", Email: "maiada@example.com"}

	_, err := svc.CreateOrder(context.Background(), user, checkoutInput())
	assert.Error(t, err)
}

func TestReceiptRendersPDF(t *testing.T) {
	order := domain.Order{
		ID: "o-1",
		Items: []domain.CartItem{
			{Product: domain.Product{ID: 1, Title: "Jacket", Price: 100, DiscountPercentage: 10}, Quantity: 2},
		},
		Subtotal:   180,
		Discount:   36,
		CouponCode: CouponCode,
		Total:      144,
		Date:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:     domain.OrderStatusPending,
	}

	pdf, err := Receipt(order)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestCreateOrderSnapshotsBuyerDetails(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	user := &domain.User{ID: "u-1", Email: "maiada@example.com"}

	st.AddToCart(ctx, user, domain.Product{ID: 1, Title: "Dress", Price: 200}, 1, domain.CartOptions{})

	in := checkoutInput()
	in.Payment = "cod"

	order, err := svc.CreateOrder(ctx, user, in)
	require.NoError(t, err)

	assert.Equal(t, "Maiada", order.CustomerName)
	assert.Equal(t, "maiada@example.com", order.CustomerEmail)
	assert.Equal(t, "12 Nile St, Cairo", order.ShippingAddress)
	assert.Equal(t, "cod", order.PaymentMethod)

	// The form details survive into the persisted history, where the
	// receipt later reads them.
	orders := st.Orders(ctx, user)
	require.Len(t, orders, 1)
	raw, err := json.Marshal(orders[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), "12 Nile St, Cairo")
	assert.Contains(t, string(raw), `"paymentMethod":"cod"`)
}
