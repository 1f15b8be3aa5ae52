package http

import (
	"log/slog"
	"net/http"

	"github.com/MaiadaMuhammed/AYN/pkg/httputil"
	"github.com/MaiadaMuhammed/AYN/pkg/validator"

	"github.com/MaiadaMuhammed/AYN/internal/domain"
	"github.com/MaiadaMuhammed/AYN/internal/session"
)

// AuthHandler exposes the mock authentication flow over the session
// registry.
type AuthHandler struct {
	sessions *session.Registry
	logger   *slog.Logger
}

// NewAuthHandler creates an auth HTTP handler.
func NewAuthHandler(sessions *session.Registry, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, logger: logger}
}

type signInView struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// SignIn handles POST /api/v1/auth/sign-in.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req session.SignInInput
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	user, token, err := h.sessions.SignIn(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: signInView{User: user, Token: token}})
}

// SignOut handles POST /api/v1/auth/sign-out. Persisted state is untouched;
// only the session dies.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if token := r.Header.Get(SessionTokenHeader); token != "" {
		h.sessions.SignOut(r.Context(), token)
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]bool{"signedOut": true}})
}

// Me handles GET /api/v1/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if user == nil {
		httputil.WriteJSON(w, http.StatusUnauthorized, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "UNAUTHORIZED", Message: "no active session"},
		})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: user})
}
