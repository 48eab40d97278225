package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/namuapp/receitas-api/internal/api"
	"github.com/namuapp/receitas-api/internal/middleware"
	"github.com/namuapp/receitas-api/internal/observability"
)

// SetupRouter configures the application routes. CORS is wide open: the API
// is consumed from frontends on other machines in the local network.
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	contextHandler *api.ContextHandler,
	metrics *observability.Metrics,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(middleware.RequestID())
	router.Use(metrics.Middleware())

	recipeHandler.RegisterRoutes(router)
	contextHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
