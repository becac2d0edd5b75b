package middleware

import (
	"currency-wallet-web/internal/i18n"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// Language resolves the display language for the request: the preference
// cookie wins, then the Accept-Language header, then the configured default.
// The resolved tag is placed in the gin context for handlers to read.
func Language(bundle *i18n.Bundle, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		preference, _ := c.Cookie(cookieName)
		tag := bundle.Resolve(preference, c.GetHeader("Accept-Language"))
		c.Set(CtxLang, tag)
		c.Next()
	}
}

// Lang returns the language tag resolved for this request. English when the
// Language middleware did not run.
func Lang(c *gin.Context) language.Tag {
	if v, ok := c.Get(CtxLang); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return language.English
}
