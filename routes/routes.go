package routes

import (
	v1 "github.com/firmdir-simple/api/v1"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the health endpoint and the authenticated API surface.
func SetupRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc, ctrl v1.Controllers) {
	router.GET("/healthz", v1.HealthCheck)

	api := router.Group("/api")
	v1.RegisterRoutes(api, authMiddleware, ctrl)
}
