// Package session persists the backend bearer token between page requests.
// Two stores exist: a stateless signed cookie (default) and a Redis-backed
// store keyed by an opaque session id. Both expose token presence as the
// only authentication signal.
package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"currency-wallet-web/config"
	"currency-wallet-web/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// CookieStore wraps the backend token in an HS256-signed JWT stored in a
// cookie. The signature only protects the cookie from tampering on the way
// through the browser; actual token validity is decided by the backend on
// the next call.
type CookieStore struct {
	name   string
	secret []byte
	ttl    time.Duration
	secure bool
}

var _ ports.SessionStore = (*CookieStore)(nil)

type sessionClaims struct {
	BackendToken string `json:"btk"`
	jwt.RegisteredClaims
}

// NewCookieStore creates a signed-cookie session store.
func NewCookieStore(cfg config.SessionConfig) (*CookieStore, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	return &CookieStore{
		name:   cfg.CookieName,
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		secure: cfg.SecureCookies,
	}, nil
}

func (s *CookieStore) Issue(_ context.Context, w http.ResponseWriter, token string) error {
	now := time.Now()
	claims := sessionClaims{
		BackendToken: token,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *CookieStore) Token(_ context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return "", nil
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	// Tampered or expired cookies read as anonymous, not as an error.
	if err != nil || !parsed.Valid {
		return "", nil
	}
	return claims.BackendToken, nil
}

func (s *CookieStore) Clear(_ context.Context, w http.ResponseWriter, _ *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
