package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func product(id int) Product {
	return Product{ID: id, Title: "Product", Price: 100, Stock: 5}
}

// ============================================================================
// Cart.Add Tests
// ============================================================================

func TestCartAdd_NewItem(t *testing.T) {
	var c Cart

	next, merged := c.Add(product(1), 2, CartOptions{Size: "M", Color: "red"})

	assert.False(t, merged)
	assert.Len(t, next, 1)
	assert.Equal(t, 2, next[0].Quantity)
	assert.Equal(t, "M", next[0].SelectedSize)
	assert.Equal(t, "red", next[0].SelectedColor)
	assert.Empty(t, c, "original cart must not be mutated")
}

func TestCartAdd_MergesOnFullKey(t *testing.T) {
	var c Cart
	c, _ = c.Add(product(1), 2, CartOptions{Size: "M"})

	next, merged := c.Add(product(1), 3, CartOptions{Size: "M"})

	assert.True(t, merged)
	assert.Len(t, next, 1)
	assert.Equal(t, 5, next[0].Quantity)
}

func TestCartAdd_DifferentVariantIsSeparateEntry(t *testing.T) {
	var c Cart
	c, _ = c.Add(product(1), 1, CartOptions{Size: "M"})

	next, merged := c.Add(product(1), 1, CartOptions{Size: "L"})

	assert.False(t, merged)
	assert.Len(t, next, 2)
}

func TestCartAdd_NoStockClamping(t *testing.T) {
	var c Cart
	p := product(1)
	p.Stock = 2

	next, _ := c.Add(p, 10, CartOptions{})

	// Stock limits are the display layer's concern.
	assert.Equal(t, 10, next[0].Quantity)
}

// ============================================================================
// Cart.RemoveProduct Tests
// ============================================================================

func TestCartRemoveProduct_RemovesAllVariants(t *testing.T) {
	var c Cart
	c, _ = c.Add(product(1), 1, CartOptions{Size: "M"})
	c, _ = c.Add(product(1), 1, CartOptions{Size: "L"})
	c, _ = c.Add(product(2), 1, CartOptions{})

	next := c.RemoveProduct(1)

	assert.Len(t, next, 1)
	assert.Equal(t, 2, next[0].Product.ID)
}

func TestCartRemoveProduct_AbsentIsNoop(t *testing.T) {
	var c Cart
	c, _ = c.Add(product(1), 1, CartOptions{})

	next := c.RemoveProduct(99)

	assert.Len(t, next, 1)
}

// ============================================================================
// Cart.SetQuantity Tests
// ============================================================================

func TestCartSetQuantity_AppliesToAllVariants(t *testing.T) {
	var c Cart
	c, _ = c.Add(product(1), 1, CartOptions{Size: "M"})
	c, _ = c.Add(product(1), 2, CartOptions{Size: "L"})

	next := c.SetQuantity(1, 4)

	assert.Equal(t, 4, next[0].Quantity)
	assert.Equal(t, 4, next[1].Quantity)
}

func TestCartSetQuantity_ZeroAndNegativePassThrough(t *testing.T) {
	var c Cart
	c, _ = c.Add(product(1), 3, CartOptions{})

	assert.Equal(t, 0, c.SetQuantity(1, 0)[0].Quantity)
	assert.Equal(t, -2, c.SetQuantity(1, -2)[0].Quantity)
}

func TestCartItemCount(t *testing.T) {
	var c Cart
	assert.Equal(t, 0, c.ItemCount())

	c, _ = c.Add(product(1), 2, CartOptions{})
	c, _ = c.Add(product(2), 3, CartOptions{})
	assert.Equal(t, 5, c.ItemCount())
}

// ============================================================================
// Favorites Tests
// ============================================================================

func TestFavoritesAdd_Idempotent(t *testing.T) {
	var f Favorites

	f, added := f.Add(product(1))
	assert.True(t, added)

	f, added = f.Add(product(1))
	assert.False(t, added)
	assert.Len(t, f, 1)
}

func TestFavoritesRemove(t *testing.T) {
	var f Favorites
	f, _ = f.Add(product(1))
	f, _ = f.Add(product(2))

	f = f.Remove(1)
	assert.Len(t, f, 1)
	assert.Equal(t, 2, f[0].ID)

	// Removing again is safe.
	f = f.Remove(1)
	assert.Len(t, f, 1)
}

func TestFavoritesContains(t *testing.T) {
	var f Favorites
	f, _ = f.Add(product(7))

	assert.True(t, f.Contains(7))
	assert.False(t, f.Contains(8))
}
