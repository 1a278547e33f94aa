package session

import (
	"net/http"
	"time"
)

type CookieOptions struct {
	Path     string
	Secure   bool
	SameSite http.SameSite
}

// CookieOptionsFor returns the attributes of the token cookie. Production
// deployments serve the frontend from another site, so the cookie must be
// Secure with SameSite=None there.
func CookieOptionsFor(production bool) CookieOptions {
	if production {
		return CookieOptions{Path: "/", Secure: true, SameSite: http.SameSiteNoneMode}
	}
	return CookieOptions{Path: "/", Secure: false, SameSite: http.SameSiteStrictMode}
}

func SetCookie(w http.ResponseWriter, token string, expiresAt time.Time, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     opts.Path,
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ClearCookie reissues the token cookie with the same attributes and an
// immediate expiry.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     opts.Path,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}
