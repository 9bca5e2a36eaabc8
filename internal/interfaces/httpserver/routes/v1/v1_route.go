package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peerweb/trader-api/internal/config"
	"peerweb/trader-api/internal/interfaces/httpserver/routes/v1/assistant"
	"peerweb/trader-api/internal/interfaces/httpserver/routes/v1/inventory"
	"peerweb/trader-api/internal/interfaces/httpserver/routes/v1/trader"
)

type V1Route struct {
	assistant *assistant.AssistantRoute
	inventory *inventory.InventoryRoute
	trader    *trader.TraderRoute
}

func NewV1Route(
	assistant *assistant.AssistantRoute,
	inventory *inventory.InventoryRoute,
	trader *trader.TraderRoute,
) *V1Route {
	return &V1Route{
		assistant,
		inventory,
		trader,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Router.GET("/healthz", GetHealthz)
	v1Router.GET("/readyz", GetReadyz)

	v1Route.assistant.RegisterRouter(v1Router)
	v1Route.inventory.RegisterRouter(v1Router)
	v1Route.trader.RegisterRouter(v1Router)
}

// GetVersion godoc
// @Summary Get API build version
// @Description Returns the current build version of the API server.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Version information"
// @Router /v1/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": config.Version,
	})
}

// GetHealthz godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API server. Used by orchestrators and monitoring systems.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Health status OK"
// @Router /v1/healthz [get]
func GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadyz godoc
// @Summary Readiness check endpoint
// @Description Returns the readiness status of the API server. Indicates if the service is ready to accept traffic.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Readiness status ready"
// @Router /v1/readyz [get]
func GetReadyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
