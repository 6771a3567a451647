package installments

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sportadmin-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var filterNow = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func testPlans() []models.PaymentPlan {
	pastDue := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	futureDue := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	return []models.PaymentPlan{
		{
			ID:                "plan-1",
			CustomerFirstName: "Jean",
			CustomerLastName:  "Dupont",
			ChildFirstName:    "Léa",
			ChildLastName:     "Dupont",
			ClassName:         "U10 Football",
			Status:            models.PlanActive,
			NextDueDate:       &pastDue,
		},
		{
			ID:                "plan-2",
			CustomerFirstName: "Marie",
			CustomerLastName:  "Martin",
			ChildFirstName:    "Hugo",
			ChildLastName:     "Martin",
			ClassName:         "U12 Basketball",
			Status:            models.PlanActive,
			NextDueDate:       &futureDue,
		},
		{
			ID:                "plan-3",
			CustomerFirstName: "Paul",
			CustomerLastName:  "Durand",
			ChildFirstName:    "Emma",
			ChildLastName:     "Durand",
			ClassName:         "U10 Football",
			Status:            models.PlanCompleted,
		},
		{
			ID:                "plan-4",
			CustomerFirstName: "Sophie",
			CustomerLastName:  "Bernard",
			ChildFirstName:    "Tom",
			ChildLastName:     "Bernard",
			ClassName:         "Judo",
			Status:            models.PlanCancelled,
		},
	}
}

func TestFilterPlans_NoCriteria(t *testing.T) {
	page, total := FilterPlans(testPlans(), models.PlanCriteria{}, filterNow)

	assert.Equal(t, 4, total)
	assert.Len(t, page, 4)
}

func TestFilterPlans_StatusFilter(t *testing.T) {
	page, total := FilterPlans(testPlans(), models.PlanCriteria{Status: models.PlanActive}, filterNow)

	assert.Equal(t, 2, total)
	for _, plan := range page {
		assert.Equal(t, models.PlanActive, plan.Status)
	}
}

func TestFilterPlans_OverdueOnly(t *testing.T) {
	page, total := FilterPlans(testPlans(), models.PlanCriteria{OverdueOnly: true}, filterNow)

	assert.Equal(t, 1, total)
	assert.Equal(t, "plan-1", page[0].ID)
}

func TestFilterPlans_SearchMatchesCustomerChildAndClass(t *testing.T) {
	// Nom du client, insensible à la casse
	page, total := FilterPlans(testPlans(), models.PlanCriteria{Search: "DUPONT"}, filterNow)
	assert.Equal(t, 1, total)
	assert.Equal(t, "plan-1", page[0].ID)

	// Prénom de l'enfant
	page, total = FilterPlans(testPlans(), models.PlanCriteria{Search: "hugo"}, filterNow)
	assert.Equal(t, 1, total)
	assert.Equal(t, "plan-2", page[0].ID)

	// Nom du cours
	_, total = FilterPlans(testPlans(), models.PlanCriteria{Search: "football"}, filterNow)
	assert.Equal(t, 2, total)
}

func TestFilterPlans_FiltersComposeWithAnd(t *testing.T) {
	criteria := models.PlanCriteria{
		Status:      models.PlanActive,
		OverdueOnly: true,
		Search:      "football",
	}
	page, total := FilterPlans(testPlans(), criteria, filterNow)

	assert.Equal(t, 1, total)
	assert.Equal(t, "plan-1", page[0].ID)

	// La composition équivaut à l'intersection des filtres pris un par un
	byStatus, _ := FilterPlans(testPlans(), models.PlanCriteria{Status: models.PlanActive}, filterNow)
	byOverdue, _ := FilterPlans(testPlans(), models.PlanCriteria{OverdueOnly: true}, filterNow)
	bySearch, _ := FilterPlans(testPlans(), models.PlanCriteria{Search: "football"}, filterNow)

	expected := intersect(intersect(byStatus, byOverdue), bySearch)
	assert.Equal(t, ids(expected), ids(page))
}

func TestFilterPlans_Idempotent(t *testing.T) {
	criteria := models.PlanCriteria{Status: models.PlanActive, Search: "martin"}

	first, firstTotal := FilterPlans(testPlans(), criteria, filterNow)
	second, secondTotal := FilterPlans(first, criteria, filterNow)

	assert.Equal(t, firstTotal, secondTotal)
	assert.Equal(t, ids(first), ids(second))
}

func TestFilterPlans_Pagination(t *testing.T) {
	plans := make([]models.PaymentPlan, 25)
	for i := range plans {
		plans[i] = models.PaymentPlan{
			ID:     fmt.Sprintf("plan-%02d", i),
			Status: models.PlanActive,
		}
	}

	page, total := FilterPlans(plans, models.PlanCriteria{Page: 2, PageSize: 10}, filterNow)

	assert.Equal(t, 25, total)
	assert.Len(t, page, 10)
	assert.Equal(t, "plan-10", page[0].ID)
	assert.Equal(t, "plan-19", page[9].ID)
}

func TestFilterPlans_PageBeyondEnd(t *testing.T) {
	page, total := FilterPlans(testPlans(), models.PlanCriteria{Page: 5, PageSize: 10}, filterNow)

	assert.Equal(t, 4, total)
	assert.Empty(t, page)
}

func TestParsePlanCriteria_RoundTripWithValues(t *testing.T) {
	cases := []models.PlanCriteria{
		{Status: models.PlanActive, OverdueOnly: true, Search: "dupont", Page: 2, PageSize: 25},
		{Page: 1, PageSize: 10},
	}

	for _, want := range cases {
		q := want.Values()
		if !want.OverdueOnly {
			// overdue=false n'est jamais émis: l'absence vaut false
			assert.Empty(t, q.Get("overdue"))
		}

		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/installments?"+q.Encode(), nil)

		assert.Equal(t, want, ParsePlanCriteria(c))
	}
}

func intersect(a, b []models.PaymentPlan) []models.PaymentPlan {
	inB := make(map[string]bool, len(b))
	for _, plan := range b {
		inB[plan.ID] = true
	}
	var out []models.PaymentPlan
	for _, plan := range a {
		if inB[plan.ID] {
			out = append(out, plan)
		}
	}
	return out
}

func ids(plans []models.PaymentPlan) []string {
	out := make([]string, len(plans))
	for i, plan := range plans {
		out[i] = plan.ID
	}
	return out
}
