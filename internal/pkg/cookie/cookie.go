package cookie

import (
	"net/http"
	"time"

	"gourmet-gateway/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	TokenCookieName    = "gg_token"
	UsernameCookieName = "gg_username"
	RoleCookieName     = "gg_role"
)

// SetSessionCookies stores the upstream bearer token plus the identity facts
// the role resolver needs. The token cookie is HttpOnly; username and role
// are readable by the presentation tier for display purposes.
func SetSessionCookies(c *gin.Context, cfg config.CookieConfig, token, username, roleHint string, ttl time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	maxAge := int(ttl.Seconds())

	c.SetCookie(
		TokenCookieName,
		token,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)

	c.SetCookie(
		UsernameCookieName,
		username,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		false,
	)

	c.SetCookie(
		RoleCookieName,
		roleHint,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		false,
	)
}

func ClearSessionCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	for _, name := range []string{TokenCookieName, UsernameCookieName, RoleCookieName} {
		c.SetCookie(
			name,
			"",
			-1,
			"/",
			cfg.Domain,
			cfg.Secure,
			true,
		)
	}
}

func GetToken(c *gin.Context) string {
	token, _ := c.Cookie(TokenCookieName)
	return token
}

func GetUsername(c *gin.Context) string {
	username, _ := c.Cookie(UsernameCookieName)
	return username
}

func GetRoleHint(c *gin.Context) string {
	role, _ := c.Cookie(RoleCookieName)
	return role
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
