package api

import (
	"github.com/gin-gonic/gin"
)

// One-shot redirect notices carried in short-lived cookies, read and
// cleared by the next page render.
const (
	flashSuccessCookie = "flash_success"
	flashErrorCookie   = "flash_error"
)

// flashSuccess queues a success notice for the next rendered page
func flashSuccess(c *gin.Context, message string) {
	c.SetCookie(flashSuccessCookie, message, 60, "/", "", false, true)
}

// flashError queues an error notice for the next rendered page
func flashError(c *gin.Context, message string) {
	c.SetCookie(flashErrorCookie, message, 60, "/", "", false, true)
}

// takeFlash consumes any queued notices, clearing their cookies
func takeFlash(c *gin.Context) (success, errMsg string) {
	if v, err := c.Cookie(flashSuccessCookie); err == nil && v != "" {
		success = v
		c.SetCookie(flashSuccessCookie, "", -1, "/", "", false, true)
	}
	if v, err := c.Cookie(flashErrorCookie); err == nil && v != "" {
		errMsg = v
		c.SetCookie(flashErrorCookie, "", -1, "/", "", false, true)
	}
	return success, errMsg
}
