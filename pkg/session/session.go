package session

import (
	"errors"
	"time"
)

const (
	CookieName = "token"
	TokenTTL   = 7 * 24 * time.Hour
)

var (
	ErrNoToken      = errors.New("no session token")
	ErrInvalidToken = errors.New("invalid session token")
	ErrEmptyClaim   = errors.New("empty identity claim")
)

// Session describes one issued token. Nothing is stored server side: a
// token stays valid until ExpiresAt even after logout.
type Session struct {
	ID        string
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
