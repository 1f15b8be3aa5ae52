package domain

// Favorites is the user's favorites list, persisted as a JSON array of
// products. Entries are unique on product ID.
type Favorites []Product

// Contains reports whether a product with the given ID is favorited.
func (f Favorites) Contains(productID int) bool {
	for _, p := range f {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Add appends the product unless one with the same ID is already present.
// It returns the new list and whether the product was actually added.
func (f Favorites) Add(product Product) (Favorites, bool) {
	if f.Contains(product.ID) {
		return f, false
	}
	next := make(Favorites, len(f), len(f)+1)
	copy(next, f)
	return append(next, product), true
}

// Remove drops the product with the given ID if present. Removing an absent
// product is a no-op.
func (f Favorites) Remove(productID int) Favorites {
	next := make(Favorites, 0, len(f))
	for _, p := range f {
		if p.ID != productID {
			next = append(next, p)
		}
	}
	return next
}
