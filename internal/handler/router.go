package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cart-recovery/internal/handler/api"
	"cart-recovery/internal/handler/middleware"
	"cart-recovery/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	restoreHandler *api.RestoreHandler,
	cartHandler *api.CartHandler,
	settingsHandler *api.SettingsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, restoreHandler, cartHandler, settingsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	restoreHandler *api.RestoreHandler,
	cartHandler *api.CartHandler,
	settingsHandler *api.SettingsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	// Shopper-facing: the signed link from recovery emails.
	engine.GET("/restore", restoreHandler.Restore)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/auth/login", Handler: authHandler.Login},
			{Method: http.MethodPost, Path: "/carts/track", Handler: cartHandler.Track},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/carts/stats", Handler: cartHandler.Stats},
				{Method: http.MethodGet, Path: "/carts/recent", Handler: cartHandler.Recent},
				{Method: http.MethodGet, Path: "/settings", Handler: settingsHandler.GetSettings},
				{Method: http.MethodPut, Path: "/settings", Handler: settingsHandler.UpdateSettings},
				{Method: http.MethodGet, Path: "/templates", Handler: settingsHandler.GetTemplates},
				{Method: http.MethodPut, Path: "/templates", Handler: settingsHandler.UpdateTemplates},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
