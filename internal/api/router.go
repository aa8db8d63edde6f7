package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"users-api/internal/handlers"
	"users-api/internal/middleware"
	"users-api/internal/observability"
)

// NewRouter wires the HTTP surface: the users routes plus /metrics.
func NewRouter(userHandler *handlers.UserHandler, log *zap.Logger) *gin.Engine {
	observability.InitMetrics(prometheus.DefaultRegisterer)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.Metrics())

	r.GET("/users", userHandler.ListUsers)
	r.GET("/kubilay", userHandler.Kubilay)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
