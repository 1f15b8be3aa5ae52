// Package event publishes storefront domain events to Kafka. Publishing is
// fire-and-forget: the state manager's mutations never fail because the
// event pipeline is down, so every publish error ends at a log line.
package event

import (
	"context"
	"log/slog"

	"github.com/MaiadaMuhammed/AYN/pkg/kafka"
	"github.com/MaiadaMuhammed/AYN/pkg/logger"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/internal/pricing"
)

// Topics for storefront domain events.
var (
	TopicCartUpdated      = kafka.Topic("cart", "updated")
	TopicCartCleared      = kafka.Topic("cart", "cleared")
	TopicFavoritesUpdated = kafka.Topic("favorites", "updated")
	TopicOrderCreated     = kafka.Topic("order", "created")
)

// Source identifier for events originating from the storefront.
const SourceStorefront = "storefront"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	Scope     string         `json:"scope"`
	Items     []CartItemData `json:"items"`
	ItemCount int            `json:"item_count"`
	Subtotal  float64        `json:"subtotal"`
}

// CartItemData is the item payload within cart and order events.
type CartItemData struct {
	ProductID     int     `json:"product_id"`
	Title         string  `json:"title"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selected_size,omitempty"`
	SelectedColor string  `json:"selected_color,omitempty"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	Scope string `json:"scope"`
}

// FavoritesUpdatedData is the payload for a favorites.updated event.
type FavoritesUpdatedData struct {
	Scope      string `json:"scope"`
	ProductIDs []int  `json:"product_ids"`
}

// OrderCreatedData is the payload for an order.created event.
type OrderCreatedData struct {
	Scope   string         `json:"scope"`
	OrderID string         `json:"order_id"`
	Items   []CartItemData `json:"items"`
	Total   float64        `json:"total"`
	Status  string         `json:"status"`
}

// Producer publishes storefront events. It satisfies the state manager's
// Publisher interface.
type Producer struct {
	kafka  *kafka.Producer
	logger *slog.Logger
}

// NewProducer creates an event producer backed by the shared Kafka producer.
func NewProducer(k *kafka.Producer, l *slog.Logger) *Producer {
	return &Producer{kafka: k, logger: l}
}

func cartItems(cart domain.Cart) []CartItemData {
	items := make([]CartItemData, len(cart))
	for i, item := range cart {
		items[i] = CartItemData{
			ProductID:     item.Product.ID,
			Title:         item.Product.Title,
			UnitPrice:     pricing.DisplayPrice(item.Product),
			Quantity:      item.Quantity,
			SelectedSize:  item.SelectedSize,
			SelectedColor: item.SelectedColor,
		}
	}
	return items
}

func (p *Producer) publish(ctx context.Context, topic, aggregateType, scope string, data any) {
	event, err := kafka.NewEvent(topic, scope, aggregateType, SourceStorefront, data)
	if err != nil {
		p.logger.ErrorContext(ctx, "create event failed",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)
		return
	}
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		event.WithCorrelationID(id)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		p.logger.ErrorContext(ctx, "publish event failed",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)
	}
}

// CartUpdated publishes a cart.updated event.
func (p *Producer) CartUpdated(ctx context.Context, scope string, cart domain.Cart) {
	p.publish(ctx, TopicCartUpdated, "cart", scope, CartUpdatedData{
		Scope:     scope,
		Items:     cartItems(cart),
		ItemCount: cart.ItemCount(),
		Subtotal:  pricing.Subtotal(cart),
	})
}

// CartCleared publishes a cart.cleared event.
func (p *Producer) CartCleared(ctx context.Context, scope string) {
	p.publish(ctx, TopicCartCleared, "cart", scope, CartClearedData{Scope: scope})
}

// FavoritesUpdated publishes a favorites.updated event.
func (p *Producer) FavoritesUpdated(ctx context.Context, scope string, favorites domain.Favorites) {
	ids := make([]int, len(favorites))
	for i, product := range favorites {
		ids[i] = product.ID
	}
	p.publish(ctx, TopicFavoritesUpdated, "favorites", scope, FavoritesUpdatedData{
		Scope:      scope,
		ProductIDs: ids,
	})
}

// OrderCreated publishes an order.created event.
func (p *Producer) OrderCreated(ctx context.Context, scope string, order domain.Order) {
	p.publish(ctx, TopicOrderCreated, "order", scope, OrderCreatedData{
		Scope:   scope,
		OrderID: order.ID,
		Items:   cartItems(domain.Cart(order.Items)),
		Total:   order.Total,
		Status:  string(order.Status),
	})
}
