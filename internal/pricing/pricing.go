// Package pricing implements display-layer price computation: discounted
// unit prices, cart subtotals, and coupon application. All arithmetic is
// decimal to avoid binary-float drift on money values; results are rounded
// to two decimal places at the boundary.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
)

var oneHundred = decimal.NewFromInt(100)

// DisplayPrice returns the discounted unit price:
// price × (1 − discountPercentage/100), rounded to 2 dp.
func DisplayPrice(p domain.Product) float64 {
	price := decimal.NewFromFloat(p.Price)
	discount := decimal.NewFromFloat(p.DiscountPercentage).Div(oneHundred)
	out, _ := price.Mul(decimal.NewFromInt(1).Sub(discount)).Round(2).Float64()
	return out
}

// LineTotal returns the discounted price of a cart item times its quantity.
func LineTotal(item domain.CartItem) float64 {
	unit := decimal.NewFromFloat(DisplayPrice(item.Product))
	out, _ := unit.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2).Float64()
	return out
}

// Subtotal returns the sum of all line totals in the cart.
func Subtotal(cart domain.Cart) float64 {
	sum := decimal.Zero
	for _, item := range cart {
		sum = sum.Add(decimal.NewFromFloat(LineTotal(item)))
	}
	out, _ := sum.Round(2).Float64()
	return out
}

// ApplyDiscount returns the discount amount and the total after applying a
// percentage discount to the subtotal.
func ApplyDiscount(subtotal, percent float64) (discount, total float64) {
	sub := decimal.NewFromFloat(subtotal)
	d := sub.Mul(decimal.NewFromFloat(percent).Div(oneHundred)).Round(2)
	discount, _ = d.Float64()
	total, _ = sub.Sub(d).Round(2).Float64()
	return discount, total
}

// ClampQuantity limits a requested quantity to the available stock, with a
// minimum of 1. This is a display-layer control: the state manager itself
// never clamps quantities.
func ClampQuantity(requested, stock int) int {
	if requested < 1 {
		return 1
	}
	if stock > 0 && requested > stock {
		return stock
	}
	return requested
}
