package routes

import (
	"sportadmin-backend/handlers/areas"

	"github.com/gin-gonic/gin"
)

func AreasRoutes(r *gin.RouterGroup) {
	areasRoutes := r.Group("/areas")
	{
		areasRoutes.GET("", areas.GetAllAreas)
		areasRoutes.GET("/:id", areas.GetAreaByID)
		areasRoutes.POST("", areas.CreateArea)
		areasRoutes.PUT("/:id", areas.UpdateArea)
		areasRoutes.DELETE("/:id", areas.DeleteArea)
	}
}
