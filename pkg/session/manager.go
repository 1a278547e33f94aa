package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"worldinsight/pkg/claims"
	"worldinsight/pkg/generator"
)

const lenSessionID = 24

type Manager struct {
	secret []byte
	ttl    time.Duration
	cookie CookieOptions
	now    func() time.Time
}

func NewManager(secret string, production bool) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    TokenTTL,
		cookie: CookieOptionsFor(production),
		now:    time.Now,
	}
}

// WithClock returns a copy of m that stamps new tokens using now.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

// Issue signs a token carrying identity verbatim. The caller's claim is
// trusted as-is.
func (m *Manager) Issue(identity json.RawMessage) (*Session, error) {
	raw := bytes.TrimSpace(identity)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, ErrEmptyClaim
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return nil, fmt.Errorf("identity claim is not json: %w", err)
	}

	id, err := generator.GenerateRandomID(lenSessionID)
	if err != nil {
		return nil, fmt.Errorf("session id gen error: %w", err)
	}

	issued := m.now().UTC()
	expires := issued.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims.Claims{
		Identity: json.RawMessage(compact.Bytes()),
		StandardClaims: jwt.StandardClaims{
			Id:        id,
			IssuedAt:  issued.Unix(),
			ExpiresAt: expires.Unix(),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("token signing: %w", err)
	}

	return &Session{
		ID:        id,
		Token:     signed,
		IssuedAt:  issued,
		ExpiresAt: expires,
	}, nil
}

// Verify checks signature and expiry and returns the decoded claims.
func (m *Manager) Verify(token string) (*claims.Claims, error) {
	parser := &jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}

	c := &claims.Claims{}
	parsed, err := parser.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || len(bytes.TrimSpace(c.Identity)) == 0 {
		return nil, fmt.Errorf("%w: missing identity", ErrInvalidToken)
	}

	return c, nil
}

// FromRequest reads and verifies the session cookie. It returns
// ErrNoToken when the cookie is absent.
func (m *Manager) FromRequest(r *http.Request) (*claims.Claims, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoToken
	}
	return m.Verify(cookie.Value)
}

func (m *Manager) SetCookie(w http.ResponseWriter, s *Session) {
	SetCookie(w, s.Token, s.ExpiresAt, m.cookie)
}

func (m *Manager) ClearCookie(w http.ResponseWriter) {
	ClearCookie(w, m.cookie)
}
