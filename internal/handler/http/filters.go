package http

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
)

// ProductFilter is the view layer's filter/sort composition over catalog
// query results. All filters apply to the raw catalog price, not the
// discounted display price.
type ProductFilter struct {
	Category  string
	Search    string
	Brand     string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
	SortBy    string // price-asc, price-desc, rating, newest
}

// filterFromQuery parses the filter from URL query parameters. Missing or
// malformed numeric parameters fall back to their zero values.
func filterFromQuery(r *http.Request) ProductFilter {
	q := r.URL.Query()
	f := ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Brand:    q.Get("brand"),
		SortBy:   q.Get("sort"),
	}
	f.MinPrice, _ = strconv.ParseFloat(q.Get("min_price"), 64)
	f.MaxPrice, _ = strconv.ParseFloat(q.Get("max_price"), 64)
	f.MinRating, _ = strconv.ParseFloat(q.Get("min_rating"), 64)
	return f
}

// Apply filters and sorts a product list. The input slice is not modified.
func (f ProductFilter) Apply(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
			continue
		}
		if f.Search != "" && !matchesSearch(p, f.Search) {
			continue
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if f.MinRating > 0 && p.Rating < f.MinRating {
			continue
		}
		out = append(out, p)
	}

	switch f.SortBy {
	case "price-asc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price-desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case "newest":
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	return out
}

func matchesSearch(p domain.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Brand), q)
}
