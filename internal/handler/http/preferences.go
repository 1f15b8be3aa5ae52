package http

import (
	"log/slog"
	"net/http"

	"github.com/MaiadaMuhammed/AYN/pkg/httputil"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/internal/state"
)

// PreferencesHandler exposes the language and theme toggles with the
// document-level attributes the view applies on every change.
type PreferencesHandler struct {
	state  *state.Manager
	logger *slog.Logger
}

// NewPreferencesHandler creates a preferences HTTP handler.
func NewPreferencesHandler(st *state.Manager, logger *slog.Logger) *PreferencesHandler {
	return &PreferencesHandler{state: st, logger: logger}
}

type preferencesView struct {
	Language   domain.Language           `json:"language"`
	Theme      domain.Theme              `json:"theme"`
	Attributes domain.DocumentAttributes `json:"attributes"`
}

// Get handles GET /api/v1/preferences.
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: preferencesView{
		Language:   h.state.Language(ctx, user),
		Theme:      h.state.Theme(ctx, user),
		Attributes: h.state.Attributes(ctx, user),
	}})
}

// ToggleLanguage handles POST /api/v1/preferences/language/toggle.
func (h *PreferencesHandler) ToggleLanguage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	lang, attrs := h.state.ToggleLanguage(ctx, user)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: preferencesView{
		Language:   lang,
		Theme:      h.state.Theme(ctx, user),
		Attributes: attrs,
	}})
}

// ToggleTheme handles POST /api/v1/preferences/theme/toggle.
func (h *PreferencesHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(ctx)

	theme, attrs := h.state.ToggleTheme(ctx, user)
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: preferencesView{
		Language:   h.state.Language(ctx, user),
		Theme:      theme,
		Attributes: attrs,
	}})
}
