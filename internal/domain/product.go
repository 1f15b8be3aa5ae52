package domain

import "strings"

// Product is a catalog entity. It is read-only from the storefront's
// perspective: created externally in the static feed, loaded once, never
// mutated by this service. JSON tags follow the feed's camelCase schema.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
	Tags               []string `json:"tags"`
	Sizes              []string `json:"sizes,omitempty"`
}

// knownColors is the set of tag values the feed uses as color swatches. The
// feed reuses the tags list for both colors and generic tags, so the only way
// to tell them apart is this name check.
var knownColors = map[string]struct{}{
	"black":  {},
	"white":  {},
	"red":    {},
	"green":  {},
	"blue":   {},
	"yellow": {},
	"orange": {},
	"purple": {},
	"pink":   {},
	"brown":  {},
	"gray":   {},
	"grey":   {},
	"beige":  {},
	"navy":   {},
	"gold":   {},
	"silver": {},
}

// Colors returns the tags that read as color swatches, in feed order.
// Non-color tags remain available through Tags.
func (p Product) Colors() []string {
	var colors []string
	for _, tag := range p.Tags {
		if _, ok := knownColors[strings.ToLower(tag)]; ok {
			colors = append(colors, tag)
		}
	}
	return colors
}

// InStock reports whether the product has any stock left.
func (p Product) InStock() bool {
	return p.Stock > 0
}
