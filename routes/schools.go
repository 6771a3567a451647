package routes

import (
	"sportadmin-backend/handlers/schools"

	"github.com/gin-gonic/gin"
)

func SchoolsRoutes(r *gin.RouterGroup) {
	schoolsRoutes := r.Group("/schools")
	{
		schoolsRoutes.GET("", schools.GetAllSchools)
		schoolsRoutes.GET("/:id", schools.GetSchoolByID)
		schoolsRoutes.POST("", schools.CreateSchool)
		schoolsRoutes.PUT("/:id", schools.UpdateSchool)
		schoolsRoutes.DELETE("/:id", schools.DeleteSchool)
		schoolsRoutes.POST("/:id/logo", schools.UploadSchoolLogo)
	}
}
