package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router gin.IRouter) {
	router.GET("/healthcheck", c.Healthcheck)
}

// Healthcheck
// @Summary Service health
// @Description Report dependency health (OpenSearch, Valkey) and host statistics.
// @Tags system
// @Produce json
// @Success 200 {object} HealthcheckResponseDTO "All components healthy"
// @Failure 503 {object} HealthcheckResponseDTO "One or more components degraded"
// @Router /healthcheck [get]
func (c *HealthcheckController) Healthcheck(ctx *gin.Context) {
	response := c.healthcheckService.CheckHealth()

	statusCode := http.StatusOK
	if response.Status != "ok" {
		statusCode = http.StatusServiceUnavailable
	}

	ctx.JSON(statusCode, response)
}
