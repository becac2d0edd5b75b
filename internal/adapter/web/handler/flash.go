package handler

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const flashCookie = "cww_flash"

// Flash is the one-shot notification carried across a POST-redirect-GET
// hop. Key is a message catalog key; Detail, when set, is appended verbatim
// after the translated message.
type Flash struct {
	Key    string `json:"key"`
	Detail string `json:"detail,omitempty"`
}

func setFlash(c *gin.Context, secure bool, f Flash) {
	raw, err := json.Marshal(f)
	if err != nil {
		return
	}
	c.SetCookie(flashCookie, base64.URLEncoding.EncodeToString(raw), 60, "/", "", secure, true)
}

// popFlash reads and immediately expires the flash cookie.
func popFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	raw, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var f Flash
	if json.Unmarshal(raw, &f) != nil {
		return nil
	}
	return &f
}
