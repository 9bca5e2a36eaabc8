package httpserver

import (
	"fmt"
	"net/http"

	"peerweb/trader-api/internal/config"
	"peerweb/trader-api/internal/infrastructure"
	middleware "peerweb/trader-api/internal/interfaces/httpserver/middlewares"
	v1 "peerweb/trader-api/internal/interfaces/httpserver/routes/v1"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type HTTPServer struct {
	engine  *gin.Engine
	infra   *infrastructure.Infrastructure
	v1Route *v1.V1Route
	config  *config.Config
}

func (s *HTTPServer) bindSwagger() {
	s.engine.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func NewHttpServer(
	v1Route *v1.V1Route,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		infra,
		v1Route,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.CORSMiddleware())
	server.engine.Use(middleware.MetricsMiddleware())

	// Root health check (for load balancers)
	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.engine.GET("/readyz", func(c *gin.Context) {
		if !infra.TokenValidator.Ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.EnableSwagger {
		server.bindSwagger()
	}
	return &server
}

func (httpServer *HTTPServer) Run() error {
	// Protected routes (auth middleware applied)
	protected := httpServer.engine.Group("/")
	protected.Use(
		middleware.AuthMiddleware(httpServer.infra.TokenValidator, httpServer.infra.Logger),
		middleware.RateLimitMiddleware(httpServer.config.RateLimitPerMinute),
	)

	httpServer.v1Route.RegisterRouter(protected)

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}
