package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gamestore/internal/domain/user"
	"gamestore/internal/handler/api"
	"gamestore/internal/handler/middleware"
	"gamestore/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	gameHandler *api.GameHandler,
	promotionHandler *api.PromotionHandler,
	purchaseHandler *api.PurchaseHandler,
	libraryHandler *api.LibraryHandler,
	statisticsHandler *api.StatisticsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, gameHandler, promotionHandler, purchaseHandler, libraryHandler, statisticsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	gameHandler *api.GameHandler,
	promotionHandler *api.PromotionHandler,
	purchaseHandler *api.PurchaseHandler,
	libraryHandler *api.LibraryHandler,
	statisticsHandler *api.StatisticsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api/v1")
	{
		games := apiGroup.Group("/games")
		games.Use(authMiddleware.RequireAuth())
		{
			adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)
			addRoutes(games, []route{
				{Method: http.MethodGet, Path: "", Handler: gameHandler.ListGames},
				{Method: http.MethodGet, Path: "/:name", Handler: gameHandler.GetGame},
				{Method: http.MethodPost, Path: "", Handler: gameHandler.RegisterGame, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPut, Path: "/:name", Handler: gameHandler.UpdateGame, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:name", Handler: gameHandler.DeactivateGame, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		promotions := apiGroup.Group("/promotions")
		promotions.Use(authMiddleware.RequireAuth())
		{
			adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)
			addRoutes(promotions, []route{
				{Method: http.MethodGet, Path: "/active", Handler: promotionHandler.GetActivePromotion},
				{Method: http.MethodPost, Path: "", Handler: promotionHandler.CreatePromotion, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: promotionHandler.DeletePromotion, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		purchases := apiGroup.Group("/purchases")
		purchases.Use(authMiddleware.RequireAuth())
		{
			addRoutes(purchases, []route{
				{Method: http.MethodPost, Path: "", Handler: purchaseHandler.Purchase},
			})
		}

		library := apiGroup.Group("/library")
		library.Use(authMiddleware.RequireAuth())
		{
			addRoutes(library, []route{
				{Method: http.MethodGet, Path: "", Handler: libraryHandler.GetLibrary},
			})
		}

		statistics := apiGroup.Group("/statistics")
		statistics.Use(authMiddleware.RequireAuth())
		{
			addRoutes(statistics, []route{
				{Method: http.MethodGet, Path: "/platform", Handler: statisticsHandler.GetPlatformStatistics},
				{Method: http.MethodGet, Path: "/user/:id", Handler: statisticsHandler.GetUserStatistics},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
