package installments

import (
	"net/http"
	"time"

	"sportadmin-backend/db"
	"sportadmin-backend/models"

	"github.com/gin-gonic/gin"
)

// @Summary Get all payment plans
// @Description Retrieve payment plans filtered by status, overdue state and free-text search, paginated
// @Tags installments
// @Produce json
// @Param status query string false "Plan status (ACTIVE/COMPLETED/CANCELLED)"
// @Param overdue query string false "Only overdue plans (true/false)"
// @Param search query string false "Case-insensitive search on customer, child and class names"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (default 10)"
// @Success 200 {object} map[string]interface{} "data: payment plans, total: pre-pagination count"
// @Failure 500 {object} map[string]string "message: Failed to load payment plans"
// @Router /installments [get]
func GetAllPlans(c *gin.Context) {
	var plans []models.PaymentPlan
	result := db.DB.Order("created_at DESC").Find(&plans)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to load payment plans",
		})
		return
	}

	criteria := ParsePlanCriteria(c)
	page, total := FilterPlans(plans, criteria, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"data":  page,
		"total": total,
	})
}
