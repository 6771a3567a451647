package installments

import (
	"strconv"
	"strings"
	"time"

	"sportadmin-backend/models"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 10

// ParsePlanCriteria décode les paramètres de requête en critères de filtrage.
// Miroir exact de models.PlanCriteria.Values.
func ParsePlanCriteria(c *gin.Context) models.PlanCriteria {
	criteria := models.PlanCriteria{
		Search:      c.Query("search"),
		Status:      models.PlanStatus(c.Query("status")),
		OverdueOnly: c.Query("overdue") == "true",
		Page:        1,
		PageSize:    defaultPageSize,
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		criteria.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil && size > 0 {
		criteria.PageSize = size
	}

	return criteria
}

// FilterPlans applique les critères sur une collection de plans et retourne
// la page demandée ainsi que le nombre total de plans correspondants avant
// pagination. Les filtres se composent en ET; la pagination est appliquée en
// dernier. Fonction pure: même entrée, même sortie.
func FilterPlans(plans []models.PaymentPlan, criteria models.PlanCriteria, now time.Time) ([]models.PaymentPlan, int) {
	filtered := make([]models.PaymentPlan, 0, len(plans))
	for _, plan := range plans {
		if criteria.Status != "" && plan.Status != criteria.Status {
			continue
		}
		if criteria.OverdueOnly && !plan.IsOverdue(now) {
			continue
		}
		if criteria.Search != "" && !matchesSearch(plan, criteria.Search) {
			continue
		}
		filtered = append(filtered, plan)
	}

	total := len(filtered)

	page := criteria.Page
	if page < 1 {
		page = 1
	}
	pageSize := criteria.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	start := (page - 1) * pageSize
	if start >= total {
		return []models.PaymentPlan{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return filtered[start:end], total
}

// Recherche plein-texte insensible à la casse sur le nom du client, de
// l'enfant et du cours.
func matchesSearch(plan models.PaymentPlan, search string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		plan.CustomerFirstName,
		plan.CustomerLastName,
		plan.ChildFirstName,
		plan.ChildLastName,
		plan.ClassName,
	}, " "))
	return strings.Contains(haystack, strings.ToLower(search))
}
