package domain

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid reports whether the status is one of the known order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// Order is a completed checkout snapshot. It is read-only after creation:
// the items and the buyer details are copies of the checkout form and the
// cart at checkout time.
type Order struct {
	ID               string      `json:"id"`
	Items            []CartItem  `json:"items"`
	CustomerName     string      `json:"customerName"`
	CustomerEmail    string      `json:"customerEmail"`
	ShippingAddress  string      `json:"shippingAddress"`
	PaymentMethod    string      `json:"paymentMethod"` // "card" or "cod"
	Subtotal         float64     `json:"subtotal"`
	Discount         float64     `json:"discount,omitempty"`
	CouponCode       string      `json:"couponCode,omitempty"`
	Total            float64     `json:"total"`
	Date             time.Time   `json:"date"`
	Status           OrderStatus `json:"status"`
	PaymentSessionID string      `json:"paymentSessionId,omitempty"`
}

// Orders is the user's order history, persisted as a JSON array.
type Orders []Order

// Append returns a new list with the order added at the end.
func (o Orders) Append(order Order) Orders {
	next := make(Orders, len(o), len(o)+1)
	copy(next, o)
	return append(next, order)
}
