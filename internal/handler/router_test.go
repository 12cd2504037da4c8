//go:build unit

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(engine *gin.Engine, method, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(method, url, nil))
	return rec
}

func TestAddRoutesPerRouteMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	gate := func(c *gin.Context) {
		if c.Query("allow") != "yes" {
			c.JSON(http.StatusForbidden, gin.H{"error": "denied"})
			c.Abort()
		}
	}

	newEngine := func(handled *bool) *gin.Engine {
		engine := gin.New()
		addRoutes(&engine.RouterGroup, []route{
			{Method: http.MethodGet, Path: "/open", Handler: func(c *gin.Context) {
				c.Status(http.StatusOK)
			}},
			{Method: http.MethodDelete, Path: "/guarded/:id", Handler: func(c *gin.Context) {
				*handled = true
				c.Status(http.StatusNoContent)
			}, Mw: []gin.HandlerFunc{gate}},
		})
		return engine
	}

	t.Run("route without middleware is untouched", func(t *testing.T) {
		var handled bool
		rec := perform(newEngine(&handled), http.MethodGet, "/open")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("aborting middleware stops the chain before the handler", func(t *testing.T) {
		var handled bool
		rec := perform(newEngine(&handled), http.MethodDelete, "/guarded/1")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, handled)
	})

	t.Run("passing middleware reaches the handler", func(t *testing.T) {
		var handled bool
		rec := perform(newEngine(&handled), http.MethodDelete, "/guarded/1?allow=yes")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, handled)
	})
}

func TestChainHandlersRunInOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var order []string
	step := func(name string) gin.HandlerFunc {
		return func(*gin.Context) { order = append(order, name) }
	}

	engine := gin.New()
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/chained", Handler: func(c *gin.Context) {
			order = append(order, "handler")
			c.Status(http.StatusOK)
		}, Mw: []gin.HandlerFunc{step("first"), step("second")}},
	})

	rec := perform(engine, http.MethodPost, "/chained")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"first", "second", "handler"}, order)
}
