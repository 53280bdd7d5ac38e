package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/authclient"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/util"
)

const identityKey = "identity"

// Identity resolves the caller's bearer token against the auth service
// and stores the identity in the request context. Resolution happens
// here, before any handler opens a database transaction, so a slow auth
// service never holds a row lock hostage.
func Identity(resolver authclient.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if token == "" {
			token = c.Query("token")
		}

		id, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// StaffOnly gates privileged routes. Runs after Identity.
func StaffOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := GetIdentity(c)
		if id == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		if !id.IsStaff {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentity returns the resolved identity, or nil outside an
// Identity-protected route.
func GetIdentity(c *gin.Context) *authclient.Identity {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	id, ok := v.(*authclient.Identity)
	if !ok {
		return nil
	}
	return id
}
