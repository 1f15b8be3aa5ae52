// Package session holds the in-memory session registry. Sessions are never
// written to the store: a token and its user die with the process, so the
// invariant "a session does not survive a reload" holds structurally.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/MaiadaMuhammed/AYN/pkg/errors"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
)

// EnvDevelopment is the environment name that skips the fresh-sign-in reset.
const EnvDevelopment = "development"

// adminEmails is the cosmetic admin allow-list. It gates nothing real; it
// only sets the IsAdmin flag the admin panel checks.
var adminEmails = map[string]struct{}{
	"admin@ecommerce.com": {},
	"owner@shop.com":      {},
}

// Resetter wipes a user's persisted state. Implemented by the state manager.
type Resetter interface {
	ResetPersistedState(ctx context.Context, userID string)
}

// SignInInput is the mock sign-in form. Passwords are accepted as-is; there
// is no real credential check, only the required-fields validation.
type SignInInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Registry is the in-memory token → user map.
type Registry struct {
	resetter    Resetter
	environment string
	logger      *slog.Logger

	mu       sync.RWMutex
	sessions map[string]domain.User
}

// NewRegistry creates a session registry. Outside the development
// environment every fresh sign-in triggers the resetter, so each sign-in
// starts from clean persisted state.
func NewRegistry(resetter Resetter, environment string, logger *slog.Logger) *Registry {
	return &Registry{
		resetter:    resetter,
		environment: environment,
		logger:      logger,
		sessions:    make(map[string]domain.User),
	}
}

// userID derives a stable ID from the email so a user's persisted slices
// land under the same scope across sign-ins.
func userID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(email))).String()
}

// IsAdminEmail reports whether the email is on the cosmetic admin allow-list.
func IsAdminEmail(email string) bool {
	_, ok := adminEmails[strings.ToLower(email)]
	return ok
}

// SignIn performs the mock authentication: any email/password pair is
// accepted, the admin flag comes from the allow-list, and a fresh token is
// issued. Outside development the user's persisted state is wiped first.
func (r *Registry) SignIn(ctx context.Context, in SignInInput) (domain.User, string, error) {
	if in.Email == "" || in.Password == "" {
		return domain.User{}, "", apperrors.InvalidInput("email and password are required")
	}

	user := domain.User{
		ID:        userID(in.Email),
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		IsAdmin:   IsAdminEmail(in.Email),
	}
	if user.FirstName == "" {
		user.FirstName = "John"
	}
	if user.LastName == "" {
		user.LastName = "Doe"
	}

	if r.environment != EnvDevelopment && r.resetter != nil {
		r.resetter.ResetPersistedState(ctx, user.ID)
	}

	token := uuid.New().String()

	r.mu.Lock()
	r.sessions[token] = user
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "user signed in",
		slog.String("user_id", user.ID),
		slog.Bool("is_admin", user.IsAdmin),
	)
	return user, token, nil
}

// Get returns the user for a token, if the session exists.
func (r *Registry) Get(token string) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.sessions[token]
	return user, ok
}

// SignOut deletes the session. The user's persisted state is untouched:
// sign-out and the session-expiry reset are distinct transitions.
func (r *Registry) SignOut(ctx context.Context, token string) {
	r.mu.Lock()
	user, ok := r.sessions[token]
	delete(r.sessions, token)
	r.mu.Unlock()

	if ok {
		r.logger.InfoContext(ctx, "user signed out", slog.String("user_id", user.ID))
	}
}

// Count returns the number of live sessions, for metrics.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
