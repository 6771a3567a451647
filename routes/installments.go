package routes

import (
	"sportadmin-backend/handlers/installments"

	"github.com/gin-gonic/gin"
)

func InstallmentsRoutes(r *gin.RouterGroup) {
	installmentsRoutes := r.Group("/installments")
	{
		installmentsRoutes.GET("", installments.GetAllPlans)
		installmentsRoutes.POST("/:id/mark-paid", installments.MarkInstallmentPaid)
		installmentsRoutes.POST("/:id/cancel", installments.CancelPlan)
		installmentsRoutes.POST("/:id/reminder", installments.SendReminder)
	}
}
