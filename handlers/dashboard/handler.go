package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"sportadmin-backend/db"
	"sportadmin-backend/models"
	"sportadmin-backend/utils"

	"github.com/gin-gonic/gin"
)

const metricsCacheKey = "dashboard:metrics"
const metricsCacheTTL = time.Minute

// @Summary Get dashboard metrics
// @Description Retrieve aggregate counts for the admin dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardMetrics
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/dashboard/metrics [get]
func GetMetrics(c *gin.Context) {
	if db.RedisClient != nil {
		if cached, err := db.RedisClient.Get(db.RedisCtx, metricsCacheKey).Result(); err == nil {
			var metrics models.DashboardMetrics
			if json.Unmarshal([]byte(cached), &metrics) == nil {
				c.JSON(http.StatusOK, metrics)
				return
			}
		}
	}

	metrics, err := computeMetrics(time.Now())
	if err != nil {
		utils.LogError(err, "Error computing dashboard metrics")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing dashboard metrics"})
		return
	}

	if db.RedisClient != nil {
		if payload, err := json.Marshal(metrics); err == nil {
			db.RedisClient.Set(db.RedisCtx, metricsCacheKey, payload, metricsCacheTTL)
		}
	}

	c.JSON(http.StatusOK, metrics)
}

func computeMetrics(now time.Time) (models.DashboardMetrics, error) {
	var metrics models.DashboardMetrics

	if err := db.DB.Model(&models.Area{}).Count(&metrics.TotalAreas).Error; err != nil {
		return metrics, err
	}
	if err := db.DB.Model(&models.School{}).Count(&metrics.TotalSchools).Error; err != nil {
		return metrics, err
	}
	if err := db.DB.Model(&models.Program{}).Count(&metrics.TotalPrograms).Error; err != nil {
		return metrics, err
	}

	if err := db.DB.Model(&models.PaymentPlan{}).
		Where("status = ?", models.PlanActive).
		Count(&metrics.ActivePlans).Error; err != nil {
		return metrics, err
	}
	// Même règle que PaymentPlan.IsOverdue: actif et échéance strictement passée
	if err := db.DB.Model(&models.PaymentPlan{}).
		Where("status = ? AND next_due_date < ?", models.PlanActive, now).
		Count(&metrics.OverduePlans).Error; err != nil {
		return metrics, err
	}
	if err := db.DB.Model(&models.PaymentPlan{}).
		Where("status = ?", models.PlanCompleted).
		Count(&metrics.CompletedPlans).Error; err != nil {
		return metrics, err
	}

	if err := db.DB.Model(&models.PaymentPlan{}).
		Where("status <> ?", models.PlanCancelled).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&metrics.TotalCollected).Error; err != nil {
		return metrics, err
	}
	if err := db.DB.Model(&models.PaymentPlan{}).
		Where("status = ?", models.PlanActive).
		Select("COALESCE(SUM(total_amount - amount_paid), 0)").
		Scan(&metrics.TotalOutstanding).Error; err != nil {
		return metrics, err
	}

	return metrics, nil
}
