package ports

import (
	"context"
	"net/http"
)

// SessionStore persists the backend bearer token between requests. Token
// presence is the sole authentication signal: a store that returns "" means
// the visitor is anonymous. The token is written only on login or
// registration and removed on logout or profile deletion.
type SessionStore interface {
	// Issue establishes a session holding the given token.
	Issue(ctx context.Context, w http.ResponseWriter, token string) error
	// Token returns the current session's token, or "" for anonymous.
	// A malformed or expired session reads as anonymous, not as an error.
	Token(ctx context.Context, r *http.Request) (string, error)
	// Clear ends the session.
	Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}
