package dispatcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sportadmin-backend/models"

	"github.com/stretchr/testify/assert"
)

type fakeBackend struct {
	t *testing.T

	mu        sync.Mutex
	plans     []models.PaymentPlan
	gets      int
	posts     []string
	postState int // code HTTP renvoyé aux POST
	block     chan struct{}
}

func newFakeBackend(t *testing.T, plans []models.PaymentPlan) (*fakeBackend, *httptest.Server) {
	b := &fakeBackend{t: t, plans: plans, postState: http.StatusOK}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			b.mu.Lock()
			b.gets++
			plans := b.plans
			b.mu.Unlock()
			json.NewEncoder(w).Encode(map[string]interface{}{
				"data":  plans,
				"total": len(plans),
			})
			return
		}

		if b.block != nil {
			<-b.block
		}
		b.mu.Lock()
		b.posts = append(b.posts, r.URL.Path)
		code := b.postState
		b.mu.Unlock()
		w.WriteHeader(code)
		if code == http.StatusOK {
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		} else {
			json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
		}
	}))
	t.Cleanup(server.Close)
	return b, server
}

func activePlan(id, nextPaymentID string) models.PaymentPlan {
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	plan := models.PaymentPlan{
		ID:          id,
		Status:      models.PlanActive,
		NextDueDate: &due,
	}
	if nextPaymentID != "" {
		plan.NextPaymentID = &nextPaymentID
	}
	return plan
}

func TestRefresh_EncodesCriteriaAsQueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/api/v1/installments", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{"data": []models.PaymentPlan{}, "total": 0})
	}))
	defer server.Close()

	d := NewDispatcher(server.URL, nil, nil)
	d.SetCriteria(models.PlanCriteria{
		Status:      models.PlanActive,
		OverdueOnly: true,
		Search:      "dupont",
		Page:        2,
	})

	err := d.Refresh(context.Background())
	assert.NoError(t, err)
	assert.Contains(t, gotQuery, "status=ACTIVE")
	assert.Contains(t, gotQuery, "overdue=true")
	assert.Contains(t, gotQuery, "search=dupont")
	assert.Contains(t, gotQuery, "page=2")
}

func TestRefresh_FetchFailedKeepsPreviousList(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":  []models.PaymentPlan{activePlan("plan-1", "pay-1")},
			"total": 1,
		})
	}))
	defer server.Close()

	d := NewDispatcher(server.URL, nil, nil)
	assert.NoError(t, d.Refresh(context.Background()))
	assert.Len(t, d.Plans(), 1)

	fail.Store(true)
	err := d.Refresh(context.Background())
	assert.Error(t, err)
	// L'échec de rechargement laisse la liste précédente intacte
	assert.Len(t, d.Plans(), 1)
}

func TestMarkNextPaid_SuccessFlow(t *testing.T) {
	backend, server := newFakeBackend(t, []models.PaymentPlan{activePlan("plan-1", "pay-1")})

	var notifications []Notification
	d := NewDispatcher(server.URL, nil, func(n Notification) {
		notifications = append(notifications, n)
	})
	assert.NoError(t, d.Refresh(context.Background()))

	assert.NoError(t, d.RequestAction(MarkNextPaid, "plan-1"))
	assert.Equal(t, Confirming, d.State("plan-1", MarkNextPaid))
	assert.Empty(t, backend.posts)

	assert.NoError(t, d.Confirm(context.Background()))

	assert.Equal(t, Succeeded, d.State("plan-1", MarkNextPaid))
	assert.Equal(t, []string{"/api/v1/installments/pay-1/mark-paid"}, backend.posts)
	assert.Equal(t, []Notification{{Success: true, Message: "Payment marked as paid successfully"}}, notifications)
	// La confirmation déclenche un rechargement de la liste
	assert.Equal(t, 2, backend.gets)
}

func TestMarkNextPaid_ServerErrorFlow(t *testing.T) {
	backend, server := newFakeBackend(t, []models.PaymentPlan{activePlan("plan-1", "pay-1")})
	backend.postState = http.StatusInternalServerError

	var notifications []Notification
	d := NewDispatcher(server.URL, nil, func(n Notification) {
		notifications = append(notifications, n)
	})
	assert.NoError(t, d.Refresh(context.Background()))
	before := d.Plans()

	assert.NoError(t, d.RequestAction(MarkNextPaid, "plan-1"))
	err := d.Confirm(context.Background())

	assert.ErrorIs(t, err, ErrActionFailed)
	assert.Equal(t, Failed, d.State("plan-1", MarkNextPaid))
	assert.Equal(t, []Notification{{Success: false, Message: "Failed to mark payment as paid"}}, notifications)
	// La liste n'est pas retouchée après un échec
	assert.Equal(t, before, d.Plans())
	assert.Equal(t, 1, backend.gets)

	// L'action reste relançable après un échec
	assert.NoError(t, d.RequestAction(MarkNextPaid, "plan-1"))
	assert.Equal(t, Confirming, d.State("plan-1", MarkNextPaid))
}

func TestCancelPlan_PathsAndMessages(t *testing.T) {
	backend, server := newFakeBackend(t, []models.PaymentPlan{activePlan("plan-1", "pay-1")})

	var notifications []Notification
	d := NewDispatcher(server.URL, nil, func(n Notification) {
		notifications = append(notifications, n)
	})
	assert.NoError(t, d.Refresh(context.Background()))

	assert.NoError(t, d.RequestAction(CancelPlan, "plan-1"))
	assert.NoError(t, d.Confirm(context.Background()))

	assert.Equal(t, []string{"/api/v1/installments/plan-1/cancel"}, backend.posts)
	assert.Equal(t, "Payment plan cancelled successfully", notifications[0].Message)
}

func TestSendReminder_Path(t *testing.T) {
	backend, server := newFakeBackend(t, []models.PaymentPlan{activePlan("plan-1", "pay-1")})

	d := NewDispatcher(server.URL, nil, nil)
	assert.NoError(t, d.Refresh(context.Background()))

	assert.NoError(t, d.RequestAction(SendReminder, "plan-1"))
	assert.NoError(t, d.Confirm(context.Background()))

	assert.Equal(t, []string{"/api/v1/installments/plan-1/reminder"}, backend.posts)
}

func TestCancel_DeclineSendsNothing(t *testing.T) {
	backend, server := newFakeBackend(t, []models.PaymentPlan{activePlan("plan-1", "pay-1")})

	var notifications []Notification
	d := NewDispatcher(server.URL, nil, func(n Notification) {
		notifications = append(notifications, n)
	})
	assert.NoError(t, d.Refresh(context.Background()))

	assert.NoError(t, d.RequestAction(CancelPlan, "plan-1"))
	d.Cancel()

	assert.Equal(t, Idle, d.State("plan-1", CancelPlan))
	assert.Empty(t, backend.posts)
	assert.Empty(t, notifications)
	assert.ErrorIs(t, d.Confirm(context.Background()), ErrNoPendingAction)
}

func TestRequestAction_DisabledForNonActivePlans(t *testing.T) {
	completed := models.PaymentPlan{ID: "plan-done", Status: models.PlanCompleted}
	cancelled := models.PaymentPlan{ID: "plan-gone", Status: models.PlanCancelled}
	_, server := newFakeBackend(t, []models.PaymentPlan{completed, cancelled})

	d := NewDispatcher(server.URL, nil, nil)
	assert.NoError(t, d.Refresh(context.Background()))

	assert.ErrorIs(t, d.RequestAction(MarkNextPaid, "plan-done"), ErrPlanNotActive)
	assert.ErrorIs(t, d.RequestAction(CancelPlan, "plan-gone"), ErrPlanNotActive)
	assert.ErrorIs(t, d.RequestAction(SendReminder, "plan-missing"), ErrPlanNotFound)
}

func TestRequestAction_NoNextPaymentForMarkPaid(t *testing.T) {
	plan := models.PaymentPlan{ID: "plan-1", Status: models.PlanActive}
	_, server := newFakeBackend(t, []models.PaymentPlan{plan})

	d := NewDispatcher(server.URL, nil, nil)
	assert.NoError(t, d.Refresh(context.Background()))

	assert.ErrorIs(t, d.RequestAction(MarkNextPaid, "plan-1"), ErrNoPendingInstallment)
}

func TestRequestAction_NoOpWhileInFlight(t *testing.T) {
	backend, server := newFakeBackend(t, []models.PaymentPlan{activePlan("plan-1", "pay-1")})
	backend.block = make(chan struct{})

	d := NewDispatcher(server.URL, nil, nil)
	assert.NoError(t, d.Refresh(context.Background()))

	assert.NoError(t, d.RequestAction(MarkNextPaid, "plan-1"))

	done := make(chan error, 1)
	go func() {
		done <- d.Confirm(context.Background())
	}()

	// On attend que l'action soit partie en vol
	assert.Eventually(t, func() bool {
		return d.State("plan-1", MarkNextPaid) == InFlight
	}, time.Second, 5*time.Millisecond)

	// Toute invocation concurrente sur le même plan est ignorée
	assert.NoError(t, d.RequestAction(CancelPlan, "plan-1"))
	assert.Equal(t, Idle, d.State("plan-1", CancelPlan))
	assert.ErrorIs(t, d.Confirm(context.Background()), ErrNoPendingAction)

	close(backend.block)
	assert.NoError(t, <-done)
	assert.Equal(t, Succeeded, d.State("plan-1", MarkNextPaid))
	assert.Equal(t, []string{"/api/v1/installments/pay-1/mark-paid"}, backend.posts)
}
