package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"stravigo-admin/internal/middleware"
	"stravigo-admin/internal/session"
)

// AuthHandler gates the portal behind the shared admin passphrase. There are
// no user accounts; knowing the passphrase is the entire authorization model.
type AuthHandler struct {
	passphrase string
	sessions   session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(passphrase string, sessions session.Manager) *AuthHandler {
	return &AuthHandler{passphrase: passphrase, sessions: sessions}
}

type loginRequest struct {
	Passphrase string `json:"passphrase"`
}

type sessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

// handleLogin checks the submitted passphrase and marks the session as
// authenticated. The session token is rotated on success so a pre-login
// cookie cannot be replayed into an authenticated one.
func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var req loginRequest
	if appErr := decodeJSON(r, &req); appErr != nil {
		return appErr
	}

	if subtle.ConstantTimeCompare([]byte(req.Passphrase), []byte(h.passphrase)) != 1 {
		return &middleware.AppError{
			Err:     errors.New("passphrase mismatch"),
			Message: "Incorrect passphrase",
			Code:    http.StatusUnauthorized,
		}
	}

	if err := h.sessions.RenewToken(r.Context()); err != nil {
		return &middleware.AppError{Err: err, Message: "Failed to establish session", Code: http.StatusInternalServerError}
	}
	h.sessions.Put(r.Context(), session.AuthenticatedKey, true)

	return respondJSON(w, http.StatusOK, sessionResponse{Authenticated: true})
}

// handleLogout destroys the session.
func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		return &middleware.AppError{Err: err, Message: "Failed to end session", Code: http.StatusInternalServerError}
	}
	return respondJSON(w, http.StatusOK, sessionResponse{Authenticated: false})
}

// handleSession reports whether the caller's session is authenticated, so
// the client can restore its state on reload without re-prompting.
func (h *AuthHandler) handleSession(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	authed := h.sessions.GetBool(r.Context(), session.AuthenticatedKey)
	return respondJSON(w, http.StatusOK, sessionResponse{Authenticated: authed})
}
