package models

import (
	"github.com/shopspring/decimal"
)

// DashboardMetrics agrège les compteurs affichés sur le tableau de bord admin
type DashboardMetrics struct {
	TotalAreas       int64           `json:"totalAreas"`
	TotalSchools     int64           `json:"totalSchools"`
	TotalPrograms    int64           `json:"totalPrograms"`
	ActivePlans      int64           `json:"activePlans"`
	OverduePlans     int64           `json:"overduePlans"`
	CompletedPlans   int64           `json:"completedPlans"`
	TotalCollected   decimal.Decimal `json:"totalCollected"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
}
