package handler

import (
	"net/http"
	"strings"

	"currency-wallet-web/internal/adapter/web/forms"
	"currency-wallet-web/internal/adapter/web/middleware"
	"currency-wallet-web/internal/core/ports"
	"currency-wallet-web/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler renders the login and registration pages and manages the
// session cookie around them.
type AuthHandler struct {
	auth       ports.AuthAPI
	sessions   ports.SessionStore
	bundle     *i18n.Bundle
	langCookie string
	secure     bool
	log        zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth ports.AuthAPI, sessions ports.SessionStore, bundle *i18n.Bundle, langCookie string, secure bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:       auth,
		sessions:   sessions,
		bundle:     bundle,
		langCookie: langCookie,
		secure:     secure,
		log:        log,
	}
}

// safeReturnPath keeps post-login redirects on this site. Anything that is
// not a local absolute path falls back to the dashboard.
func safeReturnPath(from string) string {
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") {
		return "/"
	}
	return from
}

// ShowLogin handles GET /login.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if token, err := h.sessions.Token(c.Request.Context(), c.Request); err == nil && token != "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "login.gohtml", basePage(c, h.bundle, "Log in", gin.H{
		"From":     c.Query("from"),
		"Username": "",
	}))
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.Lang(c)

	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		page := basePage(c, h.bundle, "Log in", gin.H{
			"From":     c.PostForm("from"),
			"Username": c.PostForm("username"),
		})
		page["Error"] = h.bundle.T(lang, i18n.KeyLoginFailed)
		c.HTML(http.StatusBadRequest, "login.gohtml", page)
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), form.Request())
	if err != nil {
		page := basePage(c, h.bundle, "Log in", gin.H{
			"From":     c.PostForm("from"),
			"Username": form.Username,
		})
		page["Error"] = displayError(err)
		c.HTML(http.StatusUnauthorized, "login.gohtml", page)
		return
	}

	token := resp.BearerToken()
	if token == "" {
		page := basePage(c, h.bundle, "Log in", gin.H{
			"From":     c.PostForm("from"),
			"Username": form.Username,
		})
		page["Error"] = h.bundle.T(lang, i18n.KeyTokenMissing)
		c.HTML(http.StatusBadGateway, "login.gohtml", page)
		return
	}

	if err := h.sessions.Issue(c.Request.Context(), c.Writer, token); err != nil {
		h.log.Error().Err(err).Msg("session issue failed")
		page := basePage(c, h.bundle, "Log in", gin.H{"Username": form.Username})
		page["Error"] = h.bundle.T(lang, i18n.KeyLoginFailed)
		c.HTML(http.StatusInternalServerError, "login.gohtml", page)
		return
	}

	c.Redirect(http.StatusSeeOther, safeReturnPath(c.PostForm("from")))
}

// ShowRegister handles GET /register.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.gohtml", basePage(c, h.bundle, "Create an account", gin.H{
		"Form": &forms.RegisterForm{},
	}))
}

// Register handles POST /register. When the backend already returns a token
// the new user is logged in directly; otherwise they are sent to the login
// page with a confirmation message.
func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.Lang(c)

	var form forms.RegisterForm
	_ = c.ShouldBind(&form)

	renderErr := func(status int, msg string) {
		page := basePage(c, h.bundle, "Create an account", gin.H{"Form": &form})
		page["Error"] = msg
		c.HTML(status, "register.gohtml", page)
	}

	if verr := form.Validate(); verr != nil {
		renderErr(http.StatusBadRequest, h.bundle.T(lang, verr.Key))
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), form.Request())
	if err != nil {
		renderErr(http.StatusBadRequest, displayError(err))
		return
	}

	if token := resp.BearerToken(); token != "" {
		if err := h.sessions.Issue(c.Request.Context(), c.Writer, token); err == nil {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		h.log.Error().Msg("session issue failed after registration")
	}

	setFlash(c, h.secure, Flash{Key: i18n.KeyRegistered})
	c.Redirect(http.StatusSeeOther, "/login")
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context(), c.Writer, c.Request); err != nil {
		h.log.Error().Err(err).Msg("session clear failed")
	}
	setFlash(c, h.secure, Flash{Key: i18n.KeyLoggedOut})
	c.Redirect(http.StatusSeeOther, "/login")
}

// SetLanguage handles POST /language: persists the display-language choice
// and returns to the page the form was on.
func (h *AuthHandler) SetLanguage(c *gin.Context) {
	code := c.PostForm("lang")
	if h.bundle.Supported(code) {
		c.SetCookie(h.langCookie, code, int((365 * 24 * 3600)), "/", "", h.secure, false)
	}
	c.Redirect(http.StatusSeeOther, safeReturnPath(c.PostForm("return")))
}
