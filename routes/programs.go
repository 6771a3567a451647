package routes

import (
	"sportadmin-backend/handlers/programs"

	"github.com/gin-gonic/gin"
)

func ProgramsRoutes(r *gin.RouterGroup) {
	programsRoutes := r.Group("/programs")
	{
		programsRoutes.GET("", programs.GetAllPrograms)
		programsRoutes.GET("/:id", programs.GetProgramByID)
		programsRoutes.POST("", programs.CreateProgram)
		programsRoutes.PUT("/:id", programs.UpdateProgram)
		programsRoutes.DELETE("/:id", programs.DeleteProgram)
	}
}
