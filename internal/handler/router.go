package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Nathan-Yinka/vendy-stores/internal/domain/auth"
	"github.com/Nathan-Yinka/vendy-stores/internal/handler/api"
	"github.com/Nathan-Yinka/vendy-stores/internal/handler/middleware"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/logger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.GatewayConfig,
	log *logger.Logger,
	productHandler *api.ProductHandler,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, log)
	setupRoutes(engine, productHandler, orderHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.GatewayConfig, log *logger.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	productHandler *api.ProductHandler,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := []gin.HandlerFunc{
		authMiddleware.RequireAuth(),
		authMiddleware.RequireRoleAtLeast(auth.RoleAdmin),
	}

	apiGroup := engine.Group("/api")
	{
		products := apiGroup.Group("/products")
		addRoutes(products, []route{
			{Method: http.MethodGet, Path: "", Handler: productHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: productHandler.Get},
			{Method: http.MethodPost, Path: "", Handler: productHandler.Create, Mw: adminOnly},
			{Method: http.MethodPatch, Path: "/:id/stock", Handler: productHandler.UpdateStock, Mw: adminOnly},
			// Older clients update stock with POST.
			{Method: http.MethodPost, Path: "/:id/stock", Handler: productHandler.UpdateStock, Mw: adminOnly},
		})

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the gateway is serving
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
			h = chainHandlers(append(append([]gin.HandlerFunc(nil), r.Mw...), r.Handler)...)
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
