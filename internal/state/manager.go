// Package state implements the shared application state manager: cart,
// favorites, orders, and language/theme preferences, persisted through the
// key-value store one slice per key. It is the only component that mutates
// persisted state; the view layer calls its operations and re-renders off its
// change notifications.
package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/internal/store"
)

// Slice names passed to subscribers on every successful mutation.
const (
	SliceCart      = "cart"
	SliceFavorites = "favorites"
	SliceOrders    = "orders"
	SliceLanguage  = "language"
	SliceTheme     = "theme"
)

// AnonymousScope is the storage scope used when no session is active. It
// stands in for the browser's shared per-origin storage: favorites and
// preferences work without a session, only the cart is login-gated.
const AnonymousScope = "anonymous"

// Subscriber is invoked after every successful mutation with the changed
// slice name and the storage scope it belongs to.
type Subscriber func(slice, scope string)

// Publisher receives domain events after mutations. Publishing is
// fire-and-forget: failures are the publisher's to log, never the caller's.
type Publisher interface {
	CartUpdated(ctx context.Context, scope string, cart domain.Cart)
	CartCleared(ctx context.Context, scope string)
	FavoritesUpdated(ctx context.Context, scope string, favorites domain.Favorites)
	OrderCreated(ctx context.Context, scope string, order domain.Order)
}

// Manager owns the storefront's shared state. Every mutation follows the same
// shape: read the persisted slice, apply the pure transition from the domain
// types, persist synchronously, notify subscribers, publish the event. No
// operation returns a synchronously observable error to its caller; gate
// failures surface as Notices and storage failures fail soft.
type Manager struct {
	kv        store.KV
	logger    *slog.Logger
	publisher Publisher

	mu      sync.RWMutex
	subs    map[int]Subscriber
	nextSub int
}

// New creates a state manager. The publisher may be nil when no event
// pipeline is configured.
func New(kv store.KV, publisher Publisher, logger *slog.Logger) *Manager {
	return &Manager{
		kv:        kv,
		logger:    logger,
		publisher: publisher,
		subs:      make(map[int]Subscriber),
	}
}

// Subscribe registers a change subscriber and returns its handle.
func (m *Manager) Subscribe(fn Subscriber) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return id
}

// Unsubscribe removes a subscriber by handle. Unknown handles are ignored.
func (m *Manager) Unsubscribe(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.subs, id)
}

func (m *Manager) notify(slice, scope string) {
	m.mu.RLock()
	subs := make([]Subscriber, 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.RUnlock()

	for _, fn := range subs {
		fn(slice, scope)
	}
}

// scope returns the storage scope for the given session user.
func scope(user *domain.User) string {
	if user == nil {
		return AnonymousScope
	}
	return user.ID
}

// persist writes a slice and logs failures without propagating them. The
// in-memory result is still returned to the caller; worst case is stale
// persisted data, never a failed user action.
func persist[T any](ctx context.Context, m *Manager, key string, v T) {
	if err := store.Set(ctx, m.kv, m.logger, key, v); err != nil {
		m.logger.ErrorContext(ctx, "state persist failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// ----------------------------------------------------------------------------
// Cart
// ----------------------------------------------------------------------------

// Cart returns the persisted cart for the session.
func (m *Manager) Cart(ctx context.Context, user *domain.User) domain.Cart {
	return store.Get(ctx, m.kv, m.logger, store.CartKey(scope(user)), domain.Cart{})
}

// AddToCart adds a quantity of a product under an optional size/color
// selection. Without an active session the operation is a no-op and the
// returned Notice tells the user to sign in; the cart is never touched.
// Quantities are not clamped to stock here.
func (m *Manager) AddToCart(ctx context.Context, user *domain.User, product domain.Product, quantity int, opts domain.CartOptions) (domain.Cart, Notice) {
	lang := m.Language(ctx, user)

	if user == nil {
		return m.Cart(ctx, user), loginRequiredNotice(lang)
	}
	if quantity < 1 {
		quantity = 1
	}

	sc := scope(user)
	cart := m.Cart(ctx, user)
	cart, merged := cart.Add(product, quantity, opts)

	persist(ctx, m, store.CartKey(sc), cart)
	m.notify(SliceCart, sc)
	if m.publisher != nil {
		m.publisher.CartUpdated(ctx, sc, cart)
	}

	if merged {
		return cart, quantityIncreasedNotice(lang)
	}
	return cart, productAddedNotice(lang)
}

// RemoveFromCart removes every entry matching the product ID, regardless of
// size/color variant. Removing an absent product is a no-op that still
// persists.
func (m *Manager) RemoveFromCart(ctx context.Context, user *domain.User, productID int) domain.Cart {
	sc := scope(user)
	cart := m.Cart(ctx, user).RemoveProduct(productID)

	persist(ctx, m, store.CartKey(sc), cart)
	m.notify(SliceCart, sc)
	if m.publisher != nil {
		m.publisher.CartUpdated(ctx, sc, cart)
	}
	return cart
}

// UpdateCartQuantity sets the quantity on every entry matching the product
// ID, the same coarse-grained match as removal. Zero and negative values pass
// through unchanged.
func (m *Manager) UpdateCartQuantity(ctx context.Context, user *domain.User, productID, quantity int) domain.Cart {
	sc := scope(user)
	cart := m.Cart(ctx, user).SetQuantity(productID, quantity)

	persist(ctx, m, store.CartKey(sc), cart)
	m.notify(SliceCart, sc)
	if m.publisher != nil {
		m.publisher.CartUpdated(ctx, sc, cart)
	}
	return cart
}

// ClearCart empties the cart unconditionally. No Notice.
func (m *Manager) ClearCart(ctx context.Context, user *domain.User) {
	sc := scope(user)

	persist(ctx, m, store.CartKey(sc), domain.Cart{})
	m.notify(SliceCart, sc)
	if m.publisher != nil {
		m.publisher.CartCleared(ctx, sc)
	}
}

// ----------------------------------------------------------------------------
// Favorites
// ----------------------------------------------------------------------------

// Favorites returns the persisted favorites for the session.
func (m *Manager) Favorites(ctx context.Context, user *domain.User) domain.Favorites {
	return store.Get(ctx, m.kv, m.logger, store.FavoritesKey(scope(user)), domain.Favorites{})
}

// AddToFavorites appends the product unless it is already favorited, in which
// case the list is unchanged and the Notice says so.
func (m *Manager) AddToFavorites(ctx context.Context, user *domain.User, product domain.Product) (domain.Favorites, Notice) {
	lang := m.Language(ctx, user)
	sc := scope(user)

	favorites := m.Favorites(ctx, user)
	favorites, added := favorites.Add(product)
	if !added {
		return favorites, alreadyInFavoritesNotice(lang)
	}

	persist(ctx, m, store.FavoritesKey(sc), favorites)
	m.notify(SliceFavorites, sc)
	if m.publisher != nil {
		m.publisher.FavoritesUpdated(ctx, sc, favorites)
	}
	return favorites, addedToFavoritesNotice(lang)
}

// RemoveFromFavorites removes the product if present. It persists and emits
// the removal Notice whether or not an entry existed; the second removal is a
// safe no-op.
func (m *Manager) RemoveFromFavorites(ctx context.Context, user *domain.User, productID int) (domain.Favorites, Notice) {
	lang := m.Language(ctx, user)
	sc := scope(user)

	favorites := m.Favorites(ctx, user).Remove(productID)

	persist(ctx, m, store.FavoritesKey(sc), favorites)
	m.notify(SliceFavorites, sc)
	if m.publisher != nil {
		m.publisher.FavoritesUpdated(ctx, sc, favorites)
	}
	return favorites, removedFromFavoritesNotice(lang)
}

// ----------------------------------------------------------------------------
// Preferences
// ----------------------------------------------------------------------------

// Language returns the persisted language, defaulting to English.
func (m *Manager) Language(ctx context.Context, user *domain.User) domain.Language {
	return store.Get(ctx, m.kv, m.logger, store.LanguageKey(scope(user)), domain.LanguageEnglish)
}

// Theme returns the persisted theme, defaulting to light.
func (m *Manager) Theme(ctx context.Context, user *domain.User) domain.Theme {
	return store.Get(ctx, m.kv, m.logger, store.ThemeKey(scope(user)), domain.ThemeLight)
}

// Attributes returns the document-level attributes for the session's current
// preferences.
func (m *Manager) Attributes(ctx context.Context, user *domain.User) domain.DocumentAttributes {
	return domain.Attributes(m.Language(ctx, user), m.Theme(ctx, user))
}

// ToggleLanguage flips between English and Arabic, persists, and returns the
// new language with the document attributes derived from it.
func (m *Manager) ToggleLanguage(ctx context.Context, user *domain.User) (domain.Language, domain.DocumentAttributes) {
	sc := scope(user)
	lang := m.Language(ctx, user).Toggle()

	persist(ctx, m, store.LanguageKey(sc), lang)
	m.notify(SliceLanguage, sc)

	return lang, domain.Attributes(lang, m.Theme(ctx, user))
}

// ToggleTheme flips between light and dark, persists, and returns the new
// theme with the document attributes derived from it.
func (m *Manager) ToggleTheme(ctx context.Context, user *domain.User) (domain.Theme, domain.DocumentAttributes) {
	sc := scope(user)
	theme := m.Theme(ctx, user).Toggle()

	persist(ctx, m, store.ThemeKey(sc), theme)
	m.notify(SliceTheme, sc)

	return theme, domain.Attributes(m.Language(ctx, user), theme)
}

// ----------------------------------------------------------------------------
// Orders
// ----------------------------------------------------------------------------

// Orders returns the persisted order history for the session. Orders are
// read-only once appended.
func (m *Manager) Orders(ctx context.Context, user *domain.User) domain.Orders {
	return store.Get(ctx, m.kv, m.logger, store.OrdersKey(scope(user)), domain.Orders{})
}

// AppendOrder adds a completed checkout snapshot to the order history.
func (m *Manager) AppendOrder(ctx context.Context, user *domain.User, order domain.Order) domain.Orders {
	sc := scope(user)
	orders := m.Orders(ctx, user).Append(order)

	persist(ctx, m, store.OrdersKey(sc), orders)
	m.notify(SliceOrders, sc)
	if m.publisher != nil {
		m.publisher.OrderCreated(ctx, sc, order)
	}
	return orders
}

// ----------------------------------------------------------------------------
// Session-expiry reset
// ----------------------------------------------------------------------------

// ResetPersistedState wipes every persisted slice for the scope: cart,
// favorites, orders, language, and theme, unconditionally. This is the named
// session-expiry transition, distinct from sign-out (which never touches
// persisted state). The session registry triggers it on fresh sign-ins
// outside the development environment.
func (m *Manager) ResetPersistedState(ctx context.Context, userID string) {
	if err := store.Wipe(ctx, m.kv, userID); err != nil {
		m.logger.ErrorContext(ctx, "state reset failed",
			slog.String("scope", userID),
			slog.String("error", err.Error()),
		)
		return
	}

	m.logger.InfoContext(ctx, "persisted state reset", slog.String("scope", userID))
	for _, slice := range []string{SliceCart, SliceFavorites, SliceOrders, SliceLanguage, SliceTheme} {
		m.notify(slice, userID)
	}
}
