package middleware

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const (
	// FlashCookie holds messages queued for the next rendered page.
	FlashCookie = "portal_flash"

	pendingFlashKey = "flash.pending"
)

// Flash queues msg for the next page the browser renders.
func Flash(c *gin.Context, msg string) {
	pending := append(c.GetStringSlice(pendingFlashKey), msg)
	c.Set(pendingFlashKey, pending)

	raw, err := json.Marshal(pending)
	if err != nil {
		return
	}
	setCookie(c, FlashCookie, base64.RawURLEncoding.EncodeToString(raw), 0)
}

// Flashes returns the messages queued by earlier requests and clears them.
func Flashes(c *gin.Context) []string {
	value, err := c.Cookie(FlashCookie)
	if err != nil || value == "" {
		return nil
	}
	setCookie(c, FlashCookie, "", -1)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var msgs []string
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil
	}
	return msgs
}
