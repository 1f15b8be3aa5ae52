package domain

// CartItem is a quantity of a product under an optional size/color selection.
// The product is embedded by value at add time, so later catalog changes do
// not affect items already in the cart.
type CartItem struct {
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selectedSize,omitempty"`
	SelectedColor string  `json:"selectedColor,omitempty"`
}

// Cart is the user's cart, persisted as a JSON array. Items are unique on the
// (product ID, selected size, selected color) triple.
type Cart []CartItem

// CartOptions carries the optional variant selection for an add operation.
type CartOptions struct {
	Size  string
	Color string
}

// FindIndex returns the index of the item matching the full uniqueness key,
// or -1 if no such item exists.
func (c Cart) FindIndex(productID int, size, color string) int {
	for i := range c {
		if c[i].Product.ID == productID && c[i].SelectedSize == size && c[i].SelectedColor == color {
			return i
		}
	}
	return -1
}

// Add merges the given quantity into an existing item with the same
// (product ID, size, color) key, or appends a new item. It returns the new
// cart and whether an existing item was merged into.
func (c Cart) Add(product Product, quantity int, opts CartOptions) (Cart, bool) {
	if i := c.FindIndex(product.ID, opts.Size, opts.Color); i >= 0 {
		next := make(Cart, len(c))
		copy(next, c)
		next[i].Quantity += quantity
		return next, true
	}

	next := make(Cart, len(c), len(c)+1)
	copy(next, c)
	next = append(next, CartItem{
		Product:       product,
		Quantity:      quantity,
		SelectedSize:  opts.Size,
		SelectedColor: opts.Color,
	})
	return next, false
}

// RemoveProduct removes every item whose product ID matches, regardless of
// size/color variant. Removal is deliberately coarse-grained by product ID
// only, not by the full uniqueness key.
func (c Cart) RemoveProduct(productID int) Cart {
	next := make(Cart, 0, len(c))
	for _, item := range c {
		if item.Product.ID != productID {
			next = append(next, item)
		}
	}
	return next
}

// SetQuantity sets the quantity on every item whose product ID matches, the
// same coarse-grained match as RemoveProduct. Zero and negative values are
// passed through unchanged; the display layer enforces a minimum of 1.
func (c Cart) SetQuantity(productID, quantity int) Cart {
	next := make(Cart, len(c))
	copy(next, c)
	for i := range next {
		if next[i].Product.ID == productID {
			next[i].Quantity = quantity
		}
	}
	return next
}

// ItemCount returns the total quantity across all items.
func (c Cart) ItemCount() int {
	var count int
	for _, item := range c {
		count += item.Quantity
	}
	return count
}
