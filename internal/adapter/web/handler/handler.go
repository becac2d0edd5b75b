package handler

import (
	"errors"
	"net/http"

	"currency-wallet-web/internal/core/ports"
	"currency-wallet-web/pkg/apierror"

	"github.com/gin-gonic/gin"
)

// displayError turns any backend failure into the string shown to the user.
// Normalized backend messages pass through verbatim; anything else gets a
// generic line so internals never leak into a page.
func displayError(err error) string {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}

// unauthorized reports whether err is the backend rejecting the session
// token.
func unauthorized(err error) bool {
	var apiErr *apierror.APIError
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}

// expireSession ends the session and sends the visitor back to the login
// page. Used whenever the backend answers 401: the token is dead no matter
// what the page was doing.
func expireSession(c *gin.Context, sessions ports.SessionStore) {
	_ = sessions.Clear(c.Request.Context(), c.Writer, c.Request)
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}

// confirmed reports whether the posted form carried the confirmation field.
// A missing or negative value means the user declined; the action is
// silently skipped.
func confirmed(c *gin.Context) bool {
	v := c.PostForm("confirm")
	return v == "yes" || v == "on" || v == "true" || v == "1"
}
