// Package cookiex encodes the opaque session token into a signed, tamper-evident
// browser cookie. The cookie carries no state beyond the token itself; session
// validity is always decided server-side.
package cookiex

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the session cookie name.
const CookieName = "session"

var (
	// ErrInvalidCookie reports a missing, malformed, tampered or expired cookie value.
	ErrInvalidCookie = errors.New("cookiex: invalid session cookie")
)

// Codec signs and verifies session cookie values using HS256 with a shared
// secret key.
type Codec struct {
	secret   []byte
	lifetime time.Duration
}

// NewCodec returns a Codec signing with the given secret. The lifetime bounds
// both the signature validity and the cookie Max-Age and should match the
// session window.
func NewCodec(secret string, lifetime time.Duration) *Codec {
	return &Codec{secret: []byte(secret), lifetime: lifetime}
}

// Sign wraps the opaque session token in a signed value.
func (c *Codec) Sign(token string, issuedAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": token,
		"iat": issuedAt.Unix(),
		"exp": issuedAt.Add(c.lifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks the signature and returns the embedded session token.
func (c *Codec) Verify(value string) (string, error) {
	parsed, err := jwt.Parse(value,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidCookie
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCookie
	}
	token, ok := claims["sid"].(string)
	if !ok || token == "" {
		return "", ErrInvalidCookie
	}
	return token, nil
}

// Set writes the signed session cookie: httponly, secure, SameSite=Strict,
// expiring with the session window.
func (c *Codec) Set(w http.ResponseWriter, signed string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(c.lifetime.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear expires the session cookie on the client.
func (c *Codec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

// Read returns the raw cookie value from the request, if present.
func Read(r *http.Request) (string, bool) {
	ck, err := r.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return "", false
	}
	return ck.Value, true
}
