package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// ErrKeyNotFound is returned by KV.Read when the key has never been written.
var ErrKeyNotFound = errors.New("store: key not found")

// KV is the durable key-value store holding one JSON text value per logical
// slice of state. There is no cross-key transaction.
type KV interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// Store key layout. Each slice of a user's state lives under its own key;
// customProducts is a single shared key used only by the admin editor.
const KeyCustomProducts = "customProducts"

func CartKey(userID string) string      { return "cart:" + userID }
func FavoritesKey(userID string) string { return "favorites:" + userID }
func OrdersKey(userID string) string    { return "orders:" + userID }
func LanguageKey(userID string) string  { return "language:" + userID }
func ThemeKey(userID string) string     { return "theme:" + userID }

// UserKeys returns every per-user key, in wipe order.
func UserKeys(userID string) []string {
	return []string{
		CartKey(userID),
		FavoritesKey(userID),
		OrdersKey(userID),
		LanguageKey(userID),
		ThemeKey(userID),
	}
}

// Get reads and decodes the value under key. Reads fail soft: a missing key,
// a read failure, or malformed stored text all yield the default value and no
// error to the caller. Failures other than a missing key are logged at debug
// level so a persistent problem is still diagnosable.
func Get[T any](ctx context.Context, kv KV, logger *slog.Logger, key string, def T) T {
	text, err := kv.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logger.DebugContext(ctx, "store read failed, using default",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		logger.DebugContext(ctx, "store value malformed, using default",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return def
	}
	return v
}

// Set serializes v to JSON text and writes it under key. A serialization
// failure is swallowed after logging: the in-memory value stays accepted even
// though it was never persisted. A store write failure is returned so the
// caller can decide whether to surface it.
func Set[T any](ctx context.Context, kv KV, logger *slog.Logger, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		logger.ErrorContext(ctx, "store value not serializable, write skipped",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return kv.Write(ctx, key, string(data))
}

// Wipe removes every persisted slice for the user: cart, favorites, orders,
// language, and theme. Used by the session-expiry reset.
func Wipe(ctx context.Context, kv KV, userID string) error {
	return kv.Delete(ctx, UserKeys(userID)...)
}
