package claims

import (
	"bytes"
	"context"
	"encoding/json"

	jwt "github.com/dgrijalva/jwt-go"
)

type contextKey string

const (
	TokenContextKey contextKey = "token"
)

// Named fields of a structured identity claim.
const (
	FieldEmail = "email"
	FieldName  = "name"
)

// Claims is the session token payload. Identity holds the login body
// exactly as the client sent it.
type Claims struct {
	Identity json.RawMessage `json:"identity"`
	jwt.StandardClaims
}

// Field resolves the identity value used for ownership checks. A bare
// JSON string stands for every field; an object yields its string member
// under the given name.
func (c *Claims) Field(name string) (string, bool) {
	raw := bytes.TrimSpace(c.Identity)
	if len(raw) == 0 {
		return "", false
	}

	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", false
	}
	member, ok := obj[name]
	if !ok {
		return "", false
	}
	if err := json.Unmarshal(member, &s); err != nil {
		return "", false
	}
	return s, true
}

// Owns reports whether the identity's named field equals value exactly.
func (c *Claims) Owns(field, value string) bool {
	got, ok := c.Field(field)
	return ok && got == value
}

func NewContext(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, TokenContextKey, c)
}

func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(TokenContextKey).(*Claims)
	return c, ok && c != nil
}
