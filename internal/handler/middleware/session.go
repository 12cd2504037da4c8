package middleware

import (
	"net/http"
	"strings"

	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "session"

// SessionMiddleware reconstructs the caller's session from the session
// cookies (or a bearer header for non-browser callers) and stores it in the
// request context. No session is not an error: downstream views degrade to
// the Guest role.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token != "" {
			c.Set(ctxSessionKey, &session.Session{
				Username: cookie.GetUsername(c),
				Token:    token,
				RoleHint: cookie.GetRoleHint(c),
			})
		}
		c.Next()
	}
}

// RequireSession aborts with 401 when no session is present. Used on the
// booking and cancellation paths; reads stay open to guests.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetSession(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdministrator aborts with 403 unless the resolved role is
// Administrator. Used on the venue management paths.
func RequireAdministrator() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session required",
			})
			c.Abort()
			return
		}
		if !session.ResolveRole(sess).IsAdministrator() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Administrator role required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSession returns the request's session, nil for guests.
func GetSession(c *gin.Context) *session.Session {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil
	}
	sess, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return sess
}
