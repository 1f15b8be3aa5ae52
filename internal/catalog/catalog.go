package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/pkg/httpclient"
	"github.com/MaiadaMuhammed/AYN/pkg/slug"
)

// Category pairs a category name from the feed with its URL slug.
type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Accessor fetches the product feed once and serves synchronous in-memory
// queries on the cached snapshot. The feed is a plain JSON array of products;
// no server-side filtering or pagination exists.
type Accessor struct {
	client  *httpclient.CircuitBreakerClient
	feedURL string
	logger  *slog.Logger

	mu       sync.RWMutex
	products []domain.Product
	loaded   bool
	loadErr  error
}

// New creates a catalog accessor for the given feed URL. Nothing is fetched
// until Load is called.
func New(client *httpclient.CircuitBreakerClient, feedURL string, logger *slog.Logger) *Accessor {
	return &Accessor{
		client:  client,
		feedURL: feedURL,
		logger:  logger,
	}
}

// Load fetches the feed unless a snapshot is already cached. A failed fetch
// records the error state and leaves an empty snapshot; queries keep working
// against the empty list rather than panicking past the boundary.
func (a *Accessor) Load(ctx context.Context) error {
	a.mu.RLock()
	done := a.loaded && a.loadErr == nil
	a.mu.RUnlock()
	if done {
		return nil
	}
	return a.Refresh(ctx)
}

// Refresh forces a refetch of the feed, replacing the cached snapshot.
func (a *Accessor) Refresh(ctx context.Context) error {
	products, err := a.fetch(ctx)

	a.mu.Lock()
	a.loaded = true
	a.loadErr = err
	if err != nil {
		a.products = nil
	} else {
		a.products = products
	}
	a.mu.Unlock()

	if err != nil {
		a.logger.ErrorContext(ctx, "catalog feed load failed",
			slog.String("feed_url", a.feedURL),
			slog.String("error", err.Error()),
		)
		return err
	}

	a.logger.InfoContext(ctx, "catalog feed loaded",
		slog.String("feed_url", a.feedURL),
		slog.Int("products", len(products)),
	)
	return nil
}

func (a *Accessor) fetch(ctx context.Context) ([]domain.Product, error) {
	resp, err := a.client.Get(ctx, a.feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("fetch catalog feed: unexpected status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog feed: %w", err)
	}
	return products, nil
}

// Err returns the recorded error state from the most recent load, or nil.
func (a *Accessor) Err() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loadErr
}

// All returns the cached snapshot. The returned slice is shared; callers
// must not mutate it.
func (a *Accessor) All() []domain.Product {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.products
}

// ByID returns the product with the given ID from the snapshot.
func (a *Accessor) ByID(id int) (domain.Product, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, p := range a.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ByCategory returns products whose category matches the given name or slug,
// case-insensitively.
func (a *Accessor) ByCategory(category string) []domain.Product {
	want := strings.ToLower(category)

	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []domain.Product
	for _, p := range a.products {
		if strings.ToLower(p.Category) == want || slug.Generate(p.Category) == want {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose title, description, or brand contains the
// query, case-insensitively. An empty query matches everything.
func (a *Accessor) Search(query string) []domain.Product {
	q := strings.ToLower(query)

	a.mu.RLock()
	defer a.mu.RUnlock()

	var out []domain.Product
	for _, p := range a.products {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the unique categories in feed order, with slugs.
func (a *Accessor) Categories() []Category {
	a.mu.RLock()
	defer a.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []Category
	for _, p := range a.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, Category{Name: p.Category, Slug: slug.Generate(p.Category)})
	}
	return out
}

// Ready reports readiness for health probes: the feed must have loaded
// without a recorded error.
func (a *Accessor) Ready(ctx context.Context) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.loaded {
		return fmt.Errorf("catalog: feed not loaded yet")
	}
	if a.loadErr != nil {
		return fmt.Errorf("catalog: last load failed: %w", a.loadErr)
	}
	return nil
}
