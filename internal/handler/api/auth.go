package api

import (
	"errors"
	"net/http"
	"time"

	"gourmet-gateway/internal/domain/session"
	reqdto "gourmet-gateway/internal/handler/dto/request"
	resdto "gourmet-gateway/internal/handler/dto/response"
	"gourmet-gateway/internal/handler/middleware"
	"gourmet-gateway/internal/pkg/config"
	"gourmet-gateway/internal/pkg/cookie"
	"gourmet-gateway/internal/pkg/errs"
	"gourmet-gateway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cfg          config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cfg:          cfg,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sess, err := h.authCommands.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRemoteRejected):
			// The identity service rejected the credentials; its diagnostic
			// text stays server-side.
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
			_ = c.Error(err)
		default:
			abortWithUpstreamError(c, err)
		}
		return
	}

	h.establishSession(c, sess)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sess, err := h.authCommands.Register(c.Request.Context(), req.ToRegistration())
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}

	h.establishSession(c, sess)
}

// DemoSession hands out an offline session so the presentation tier can run
// without any backend at all.
func (h *AuthHandler) DemoSession(c *gin.Context) {
	var req reqdto.DemoSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	h.establishSession(c, h.authCommands.DemoSession(req.Admin))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.GetSession(c)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No active session",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.NewSessionResponse(sess))
}

func (h *AuthHandler) establishSession(c *gin.Context, sess *session.Session) {
	ttl := sessionTTL(sess.Token, h.cfg.Session.Duration)
	cookie.SetSessionCookies(c, h.cfg.Cookie, sess.Token, sess.Username, sess.RoleHint, ttl)
	c.JSON(http.StatusOK, resdto.NewSessionResponse(sess))
}

// sessionTTL aligns the cookie lifetime with the upstream token's expiry.
// The token is opaque to this layer, so the claims are read unverified and
// only as a lifetime hint; anything non-JWT (the demo sentinel included)
// gets the configured fallback duration.
func sessionTTL(token string, fallback time.Duration) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fallback
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return fallback
	}
	return ttl
}
