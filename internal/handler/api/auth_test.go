//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gourmet-gateway/internal/domain/session"
	"gourmet-gateway/internal/handler/api"
	"gourmet-gateway/internal/handler/middleware"
	"gourmet-gateway/internal/infra/gateway"
	"gourmet-gateway/internal/pkg/config"
	"gourmet-gateway/internal/pkg/cookie"
	"gourmet-gateway/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type stubAuthCommands struct {
	loginSession    *session.Session
	loginErr        error
	registerSession *session.Session
	registerErr     error
}

func (s *stubAuthCommands) Login(context.Context, string, string) (*session.Session, error) {
	return s.loginSession, s.loginErr
}

func (s *stubAuthCommands) Register(context.Context, gateway.Registration) (*session.Session, error) {
	return s.registerSession, s.registerErr
}

func (s *stubAuthCommands) DemoSession(admin bool) *session.Session {
	username := "Guest User"
	if admin {
		username = "Guest Admin"
	}
	return &session.Session{Username: username, Token: session.DemoToken}
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubAuthCommands
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.SessionMiddleware())

	s.stub = &stubAuthCommands{}
	handler := api.NewAuthHandler(s.stub, config.NewTestConfig())

	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/register", handler.Register)
	s.router.POST("/auth/demo", handler.DemoSession)
	s.router.POST("/auth/logout", handler.Logout)
	s.router.GET("/auth/me", handler.Me)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) performJSON(method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthHandlerTestSuite) cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("success: establishes session cookies and returns identity", func() {
		s.stub.loginSession = &session.Session{Username: "chris", Token: "tok-123", RoleHint: "ROLE_ADMIN"}
		s.stub.loginErr = nil

		rec := s.performJSON(http.MethodPost, "/auth/login", gin.H{"username": "chris", "password": "secret"})

		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("chris", resp["username"])
		s.Equal("admin", resp["role"])
		s.Equal(false, resp["demo"])

		tokenCookie := s.cookieByName(rec, cookie.TokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal("tok-123", tokenCookie.Value)
		s.True(tokenCookie.HttpOnly)

		roleCookie := s.cookieByName(rec, cookie.RoleCookieName)
		s.Require().NotNil(roleCookie)
		s.Equal("ROLE_ADMIN", roleCookie.Value)
	})

	s.Run("error: 401 with a generic message when credentials are rejected", func() {
		s.stub.loginSession = nil
		s.stub.loginErr = errs.Mark(errs.New("upstream 401 Unauthorized: bad password"), errs.ErrRemoteRejected)

		rec := s.performJSON(http.MethodPost, "/auth/login", gin.H{"username": "chris", "password": "wrong"})

		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "Invalid username or password")
		s.NotContains(rec.Body.String(), "bad password")
	})

	s.Run("error: 503 when the identity service is unreachable", func() {
		s.stub.loginSession = nil
		s.stub.loginErr = errs.Mark(errs.New("connection refused"), errs.ErrUnreachable)

		rec := s.performJSON(http.MethodPost, "/auth/login", gin.H{"username": "chris", "password": "secret"})

		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})

	s.Run("error: 400 on missing fields", func() {
		rec := s.performJSON(http.MethodPost, "/auth/login", gin.H{"username": "chris"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	s.Run("success: registers and establishes a session", func() {
		s.stub.registerSession = &session.Session{Username: "newuser", Token: "tok-456", RoleHint: "ROLE_USER"}

		rec := s.performJSON(http.MethodPost, "/auth/register", gin.H{
			"username": "newuser",
			"password": "secret",
			"email":    "new@example.com",
		})

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"username":"newuser"`)
		s.NotNil(s.cookieByName(rec, cookie.TokenCookieName))
	})

	s.Run("error: 400 on invalid email", func() {
		rec := s.performJSON(http.MethodPost, "/auth/register", gin.H{
			"username": "newuser",
			"password": "secret",
			"email":    "not-an-email",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestDemoSession() {
	s.Run("admin demo session resolves to the administrator role", func() {
		rec := s.performJSON(http.MethodPost, "/auth/demo", gin.H{"admin": true})

		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("Guest Admin", resp["username"])
		s.Equal("admin", resp["role"])
		s.Equal(true, resp["demo"])

		tokenCookie := s.cookieByName(rec, cookie.TokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal(session.DemoToken, tokenCookie.Value)
	})

	s.Run("standard demo session resolves to the user role", func() {
		rec := s.performJSON(http.MethodPost, "/auth/demo", gin.H{"admin": false})

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("Guest User", resp["username"])
		s.Equal("user", resp["role"])
	})
}

// jwtExpiringIn builds a signed token whose only claim of interest is exp.
// The handler reads claims unverified, so the signing key is irrelevant.
func (s *AuthHandlerTestSuite) jwtExpiringIn(d time.Duration) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(d).Unix(),
	})
	signed, err := token.SignedString([]byte("irrelevant"))
	s.Require().NoError(err)
	return signed
}

func (s *AuthHandlerTestSuite) TestSessionCookieLifetime() {
	fallbackSeconds := int(config.NewTestConfig().Session.Duration.Seconds())

	s.Run("tracks the token exp claim when the upstream issues a JWT", func() {
		s.stub.loginSession = &session.Session{Username: "chris", Token: s.jwtExpiringIn(2 * time.Hour)}
		s.stub.loginErr = nil

		rec := s.performJSON(http.MethodPost, "/auth/login", gin.H{"username": "chris", "password": "secret"})
		s.Require().Equal(http.StatusOK, rec.Code)

		tokenCookie := s.cookieByName(rec, cookie.TokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.InDelta((2 * time.Hour).Seconds(), float64(tokenCookie.MaxAge), 5)
	})

	s.Run("falls back to the configured duration for an opaque token", func() {
		s.stub.loginSession = &session.Session{Username: "chris", Token: "tok-123"}
		s.stub.loginErr = nil

		rec := s.performJSON(http.MethodPost, "/auth/login", gin.H{"username": "chris", "password": "secret"})
		s.Require().Equal(http.StatusOK, rec.Code)

		tokenCookie := s.cookieByName(rec, cookie.TokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal(fallbackSeconds, tokenCookie.MaxAge)
	})

	s.Run("falls back for the demo sentinel token", func() {
		rec := s.performJSON(http.MethodPost, "/auth/demo", gin.H{"admin": false})
		s.Require().Equal(http.StatusOK, rec.Code)

		tokenCookie := s.cookieByName(rec, cookie.TokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal(fallbackSeconds, tokenCookie.MaxAge)
	})

	s.Run("falls back when the JWT is already expired", func() {
		s.stub.loginSession = &session.Session{Username: "chris", Token: s.jwtExpiringIn(-time.Minute)}
		s.stub.loginErr = nil

		rec := s.performJSON(http.MethodPost, "/auth/login", gin.H{"username": "chris", "password": "secret"})
		s.Require().Equal(http.StatusOK, rec.Code)

		tokenCookie := s.cookieByName(rec, cookie.TokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.Equal(fallbackSeconds, tokenCookie.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := s.performJSON(http.MethodPost, "/auth/logout", nil)

	s.Equal(http.StatusNoContent, rec.Code)

	tokenCookie := s.cookieByName(rec, cookie.TokenCookieName)
	s.Require().NotNil(tokenCookie)
	s.Empty(tokenCookie.Value)
	s.Negative(tokenCookie.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: reports the session reconstructed from cookies", func() {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: cookie.TokenCookieName, Value: "tok-123"})
		req.AddCookie(&http.Cookie{Name: cookie.UsernameCookieName, Value: "admin_jane"})
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"username":"admin_jane"`)
		s.Contains(rec.Body.String(), `"role":"admin"`)
	})

	s.Run("error: 401 without a session", func() {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
