package middleware

import (
	"errors"
	"net/http"

	"currency-wallet-web/internal/core/domain"
	"currency-wallet-web/internal/core/ports"
	"currency-wallet-web/pkg/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequireSession guards the authenticated pages. A request without a valid
// session is redirected to /login carrying the original URL; a request with
// one proceeds with the bearer token attached to its context so every
// backend call downstream is authenticated.
func RequireSession(sessions ports.SessionStore, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := sessions.Token(c.Request.Context(), c.Request)
		if err != nil {
			log.Error().Err(err).Msg("session read failed")
			c.Redirect(http.StatusSeeOther, loginRedirect(c))
			c.Abort()
			return
		}
		if token == "" {
			c.Redirect(http.StatusSeeOther, loginRedirect(c))
			c.Abort()
			return
		}

		c.Set(CtxToken, token)
		c.Request = c.Request.WithContext(ports.WithToken(c.Request.Context(), token))
		c.Next()
	}
}

// RequireAdmin re-checks the caller's role against the backend on every
// request. Role claims cached in the session are never trusted for admin
// pages. Must run after RequireSession.
func RequireAdmin(auth ports.AuthAPI, sessions ports.SessionStore, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.Me(c.Request.Context())
		if err != nil {
			var apiErr *apierror.APIError
			if errors.As(err, &apiErr) && apiErr.Unauthorized() {
				_ = sessions.Clear(c.Request.Context(), c.Writer, c.Request)
				c.Redirect(http.StatusSeeOther, "/login")
				c.Abort()
				return
			}
			log.Error().Err(err).Msg("identity check failed")
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}

		c.Set(CtxUser, user)
		c.Next()
	}
}

// CurrentUser returns the user placed in the context by RequireAdmin, or nil.
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(CtxUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
