package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gourmet-gateway/internal/handler/api"
	"gourmet-gateway/internal/handler/middleware"
	"gourmet-gateway/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Venue       *api.VenueHandler
	Reservation *api.ReservationHandler
	Place       *api.PlaceHandler
	Dashboard   *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.SessionMiddleware())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/demo", Handler: h.Auth.DemoSession},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{middleware.RequireSession()}},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Summary},
			{Method: http.MethodGet, Path: "/places/search", Handler: h.Place.Search},
		})

		// Reads stay open to guests; writes are gated per route.
		venues := apiGroup.Group("/venues")
		{
			adminOnly := []gin.HandlerFunc{middleware.RequireAdministrator()}
			addRoutes(venues, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Venue.List},
				{Method: http.MethodPost, Path: "", Handler: h.Venue.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Venue.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Venue.Delete, Mw: adminOnly},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			sessionRequired := []gin.HandlerFunc{middleware.RequireSession()}
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create, Mw: sessionRequired},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Cancel, Mw: sessionRequired},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
