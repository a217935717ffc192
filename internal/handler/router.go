package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"allure-rental/internal/handler/api"
	"allure-rental/internal/handler/middleware"
	"allure-rental/internal/pkg/config"
	"allure-rental/internal/usecase/maintenance"
)

type Handlers struct {
	Dress       *api.DressHandler
	Cart        *api.CartHandler
	Prospect    *api.ProspectHandler
	Maintenance *api.MaintenanceHandler
}

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, sw *maintenance.Switch) {
	setupMiddleware(engine, cfg, sw)
	setupRoutes(engine, handlers)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, sw *maintenance.Switch) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.Maintenance(sw))
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		dresses := apiGroup.Group("/dresses")
		addRoutes(dresses, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Dress.List},
			{Method: http.MethodGet, Path: "/facets", Handler: h.Dress.Facets},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Dress.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Dress.Availability},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: h.Dress.Quote},
		})

		carts := apiGroup.Group("/carts/:cartId")
		addRoutes(carts, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
			{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
			{Method: http.MethodPut, Path: "/items/:dressId", Handler: h.Cart.PutItem},
			{Method: http.MethodDelete, Path: "/items/:dressId", Handler: h.Cart.RemoveItem},
			{Method: http.MethodPost, Path: "/checkout", Handler: h.Cart.Checkout},
		})

		prospects := apiGroup.Group("/prospects")
		addRoutes(prospects, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Prospect.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Prospect.Get},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/maintenance", Handler: h.Maintenance.Status},
			{Method: http.MethodPost, Path: "/maintenance", Handler: h.Maintenance.Toggle},
			{Method: http.MethodPost, Path: "/webhook/maintenance", Handler: h.Maintenance.Webhook},
		})
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
