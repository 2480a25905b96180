// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/quill/controller"
	"github.com/dev-mohitbeniwal/quill/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	limiter middleware.Limiter,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(limiter, rateLimitRequests, rateLimitDuration))

	api := router.Group("/api/v1")
	controllers.RegisterRoutes(api)

	return router
}
