package routes

import (
	"sportadmin-backend/handlers/dashboard"

	"github.com/gin-gonic/gin"
)

func DashboardRoutes(r *gin.RouterGroup) {
	r.GET("/admin/dashboard/metrics", dashboard.GetMetrics)
}
