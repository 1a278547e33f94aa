package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"worldinsight/pkg/session"
)

const maxClaimBytes = 64 << 10

type SessionIssuer interface {
	Issue(identity json.RawMessage) (*session.Session, error)
	SetCookie(w http.ResponseWriter, s *session.Session)
	ClearCookie(w http.ResponseWriter)
}

type AuthHandler struct {
	Sessions SessionIssuer
	Logger   *slog.Logger
}

func NewAuthHandler(sessions SessionIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		Sessions: sessions,
		Logger:   logger,
	}
}

// Login issues a session token for whatever identity the body carries and
// stores it in the token cookie. No user registry is consulted.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxClaimBytes+1))
	if err != nil || len(body) > maxClaimBytes || !json.Valid(body) {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid JSON payload")
		return
	}

	s, err := h.Sessions.Issue(json.RawMessage(body))
	if errors.Is(err, session.ErrEmptyClaim) {
		writeError(w, http.StatusBadRequest, typeMessage, "missing identity")
		return
	}
	if err != nil {
		h.Logger.Error("token signing", "error", err)
		writeError(w, http.StatusInternalServerError, typeMessage, "internal server error")
		return
	}

	h.Sessions.SetCookie(w, s)
	if ok := writeJSON(w, h.Logger, map[string]bool{"success": true}); ok {
		h.Logger.Info("session issued", "session", s.ID, "expires", s.ExpiresAt)
	}
}

// Logout clears the token cookie. The token itself stays valid until it
// expires since nothing is kept server side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.ClearCookie(w)
	writeJSON(w, h.Logger, map[string]bool{"success": true})
}

func (h *AuthHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("Server is running")); err != nil {
		h.Logger.Error("Failed to write response to client", "error", err)
	}
}
