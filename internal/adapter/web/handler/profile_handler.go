package handler

import (
	"net/http"

	"currency-wallet-web/internal/adapter/web/forms"
	"currency-wallet-web/internal/core/ports"
	"currency-wallet-web/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ProfileHandler renders and mutates the caller's own profile.
type ProfileHandler struct {
	profile  ports.ProfileAPI
	sessions ports.SessionStore
	bundle   *i18n.Bundle
	secure   bool
	log      zerolog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profile ports.ProfileAPI, sessions ports.SessionStore, bundle *i18n.Bundle, secure bool, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profile:  profile,
		sessions: sessions,
		bundle:   bundle,
		secure:   secure,
		log:      log,
	}
}

// Show handles GET /profile.
func (h *ProfileHandler) Show(c *gin.Context) {
	profile, err := h.profile.MyProfile(c.Request.Context())
	if err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		page := basePage(c, h.bundle, "Profile", nil)
		page["Error"] = displayError(err)
		c.HTML(http.StatusBadGateway, "profile.gohtml", page)
		return
	}

	c.HTML(http.StatusOK, "profile.gohtml", basePage(c, h.bundle, "Profile", gin.H{
		"Profile": profile,
	}))
}

// Update handles POST /profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	var form forms.ProfileForm
	_ = c.ShouldBind(&form)

	if err := h.profile.UpdateMyProfile(c.Request.Context(), form.Request()); err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		page := basePage(c, h.bundle, "Profile", gin.H{"Form": &form})
		page["Error"] = displayError(err)
		c.HTML(http.StatusBadRequest, "profile.gohtml", page)
		return
	}

	setFlash(c, h.secure, Flash{Key: i18n.KeyProfileUpdated})
	c.Redirect(http.StatusSeeOther, "/profile")
}

// Delete handles POST /profile/delete. The posted confirmation field is the
// safety catch: without it nothing happens and the profile page reloads
// unchanged. A successful deletion ends the session.
func (h *ProfileHandler) Delete(c *gin.Context) {
	if !confirmed(c) {
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}

	if err := h.profile.DeleteMyProfile(c.Request.Context()); err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		page := basePage(c, h.bundle, "Profile", nil)
		page["Error"] = displayError(err)
		c.HTML(http.StatusBadRequest, "profile.gohtml", page)
		return
	}

	if err := h.sessions.Clear(c.Request.Context(), c.Writer, c.Request); err != nil {
		h.log.Error().Err(err).Msg("session clear failed after profile deletion")
	}
	setFlash(c, h.secure, Flash{Key: i18n.KeyProfileDeleted})
	c.Redirect(http.StatusSeeOther, "/login")
}
