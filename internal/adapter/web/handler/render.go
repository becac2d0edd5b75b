// Package handler renders the HTML pages and processes their form posts.
// Every page is a server-rendered template; mutations follow
// POST-redirect-GET except where the result exists only in the response
// (conversions, exchange receipts, deposit links).
package handler

import (
	"embed"
	"html/template"
	"time"

	"currency-wallet-web/internal/adapter/web/middleware"
	"currency-wallet-web/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"amount": func(v any) string {
			switch d := v.(type) {
			case decimal.Decimal:
				return d.StringFixed(2)
			case *decimal.Decimal:
				if d != nil {
					return d.StringFixed(2)
				}
			}
			return ""
		},
		"datetime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.gohtml"))
}

// basePage fills the keys every template expects. Page-specific fields are
// merged on top.
func basePage(c *gin.Context, bundle *i18n.Bundle, title string, fields gin.H) gin.H {
	lang := middleware.Lang(c)

	var flashMsg string
	if f := popFlash(c); f != nil {
		flashMsg = bundle.T(lang, f.Key)
		if f.Detail != "" {
			flashMsg += " " + f.Detail
		}
	}

	page := gin.H{
		"Title": title,
		"Lang":  lang.String(),
		"Path":  c.Request.URL.Path,
		"Flash": flashMsg,
		"Error": "",
	}
	for k, v := range fields {
		page[k] = v
	}
	return page
}
