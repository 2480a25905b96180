// controller/health_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/quill/service"
)

type HealthController struct {
	healthService service.IHealthService
}

func NewHealthController(healthService service.IHealthService) *HealthController {
	return &HealthController{healthService: healthService}
}

func (hc *HealthController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", hc.Check)
}

// Check always answers 200; the body carries per-dependency status.
func (hc *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, hc.healthService.Check(c.Request.Context()))
}
