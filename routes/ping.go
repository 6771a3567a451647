package routes

import (
	"sportadmin-backend/handlers/ping"

	"github.com/gin-gonic/gin"
)

func PingRoutes(r *gin.RouterGroup) {
	handler := ping.New()
	r.GET("/ping", handler.HandlePing)
	r.GET("/health", handler.HandleHealth)
}
