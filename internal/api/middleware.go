package api

import (
	"net/http"

	"github.com/blogging-platform/internal/auth"
	"github.com/gin-gonic/gin"
)

// authCookieName is the cookie carrying the session token
const authCookieName = "authToken"

// identityKey is the request-context key for the resolved identity
const identityKey = "identity"

// authRequired extracts the session token from the authToken cookie and
// verifies it. Missing, malformed, tampered and expired tokens are all
// rejected the same way: redirect to the login page. On success the
// resolved identity is attached to the request context; no session store
// is consulted.
func authRequired(codec *auth.TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(authCookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		identity, err := codec.Verify(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// identityFrom returns the identity attached by authRequired
func identityFrom(c *gin.Context) (*auth.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok
}
