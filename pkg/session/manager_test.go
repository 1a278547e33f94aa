package session_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"worldinsight/pkg/session"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestIssueAndVerify(t *testing.T) {
	m := session.NewManager(secret, false)

	identities := []string{
		`"alice@example.com"`,
		`{"email":"alice@example.com"}`,
		`{"email":"bob@example.com","name":"Bob","roles":["a","b"],"n":1.5}`,
		`"ünïcödé"`,
		`42`,
	}

	for _, identity := range identities {
		t.Run(identity, func(t *testing.T) {
			s, err := m.Issue(json.RawMessage(identity))
			require.NoError(t, err)

			c, err := m.Verify(s.Token)

			require.NoError(t, err)
			assert.JSONEq(t, identity, string(c.Identity))
			assert.Equal(t, s.ID, c.Id)
			assert.Len(t, s.ID, 24)
		})
	}
}

func TestIssueExpiry(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := session.NewManager(secret, false).WithClock(func() time.Time { return now })

	s, err := m.Issue(json.RawMessage(`"alice"`))

	require.NoError(t, err)
	assert.Equal(t, now, s.IssuedAt)
	assert.Equal(t, now.Add(7*24*time.Hour), s.ExpiresAt)
}

func TestIssueRejectsEmptyClaim(t *testing.T) {
	m := session.NewManager(secret, false)

	for _, identity := range []string{``, `  `, `null`} {
		_, err := m.Issue(json.RawMessage(identity))
		assert.ErrorIs(t, err, session.ErrEmptyClaim)
	}

	_, err := m.Issue(json.RawMessage(`{"email":`))
	assert.Error(t, err)
}

func TestVerifyExpired(t *testing.T) {
	past := time.Now().Add(-session.TokenTTL - time.Minute)
	m := session.NewManager(secret, false).WithClock(func() time.Time { return past })

	s, err := m.Issue(json.RawMessage(`"alice@example.com"`))
	require.NoError(t, err)

	_, err = session.NewManager(secret, false).Verify(s.Token)

	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestVerifyJustBeforeExpiry(t *testing.T) {
	past := time.Now().Add(-session.TokenTTL + time.Minute)
	m := session.NewManager(secret, false).WithClock(func() time.Time { return past })

	s, err := m.Issue(json.RawMessage(`"alice@example.com"`))
	require.NoError(t, err)

	_, err = m.Verify(s.Token)

	assert.NoError(t, err)
}

func TestVerifyTamperedSignature(t *testing.T) {
	m := session.NewManager(secret, false)
	s, err := m.Issue(json.RawMessage(`"alice@example.com"`))
	require.NoError(t, err)

	parts := strings.Split(s.Token, ".")
	require.Len(t, parts, 3)
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	for bit := 0; bit < len(sig)*8; bit++ {
		flipped := make([]byte, len(sig))
		copy(flipped, sig)
		flipped[bit/8] ^= 1 << (bit % 8)

		token := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(flipped)

		_, err := m.Verify(token)
		require.ErrorIs(t, err, session.ErrInvalidToken, "bit %d", bit)
	}
}

func TestVerifyTamperedPayload(t *testing.T) {
	m := session.NewManager(secret, false)
	s, err := m.Issue(json.RawMessage(`"alice@example.com"`))
	require.NoError(t, err)

	parts := strings.Split(s.Token, ".")
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"identity":"bob@example.com","exp":4102444800}`))

	_, err = m.Verify(parts[0] + "." + forged + "." + parts[2])

	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	s, err := session.NewManager("other-secret", false).Issue(json.RawMessage(`"alice"`))
	require.NoError(t, err)

	_, err = session.NewManager(secret, false).Verify(s.Token)

	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"identity": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = session.NewManager(secret, false).Verify(signed)

	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestVerifyMissingIdentity(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = session.NewManager(secret, false).Verify(signed)

	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestFromRequest(t *testing.T) {
	m := session.NewManager(secret, false)

	t.Run("no cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := m.FromRequest(r)

		assert.ErrorIs(t, err, session.ErrNoToken)
	})

	t.Run("garbage cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not.a.jwt"})

		_, err := m.FromRequest(r)

		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("valid cookie", func(t *testing.T) {
		s, err := m.Issue(json.RawMessage(`"alice@example.com"`))
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: session.CookieName, Value: s.Token})

		c, err := m.FromRequest(r)

		require.NoError(t, err)
		assert.JSONEq(t, `"alice@example.com"`, string(c.Identity))
	})
}
