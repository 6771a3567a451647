// Package dispatcher fournit le client d'actions utilisé par l'outillage
// d'administration: chaque action mutante sur un plan de paiement passe par
// une confirmation explicite avant d'émettre exactement un appel réseau.
package dispatcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"sportadmin-backend/models"
)

type ActionKind string

const (
	MarkNextPaid ActionKind = "markNextPaid"
	CancelPlan   ActionKind = "cancelPlan"
	SendReminder ActionKind = "sendReminder"
)

// State suit le cycle de vie d'une action: Idle → Confirming → InFlight →
// Succeeded ou Failed. Cancel ramène de Confirming à Idle sans appel réseau.
type State int

const (
	Idle State = iota
	Confirming
	InFlight
	Succeeded
	Failed
)

var (
	ErrPlanNotFound         = errors.New("payment plan not found in current list")
	ErrPlanNotActive        = errors.New("payment plan is not active")
	ErrNoPendingInstallment = errors.New("payment plan has no pending installment")
	ErrNoPendingAction      = errors.New("no action awaiting confirmation")
	ErrActionFailed         = errors.New("action request failed")
)

// Messages fixes par type d'action, indépendants du corps de la réponse
var successMessages = map[ActionKind]string{
	MarkNextPaid: "Payment marked as paid successfully",
	CancelPlan:   "Payment plan cancelled successfully",
	SendReminder: "Payment reminder sent successfully",
}

var failureMessages = map[ActionKind]string{
	MarkNextPaid: "Failed to mark payment as paid",
	CancelPlan:   "Failed to cancel payment plan",
	SendReminder: "Failed to send payment reminder",
}

// Notification est le retour utilisateur émis à l'issue d'une action confirmée
type Notification struct {
	Success bool
	Message string
}

type listResponse struct {
	Data  []models.PaymentPlan `json:"data"`
	Total int                  `json:"total"`
}

type pendingAction struct {
	kind   ActionKind
	planID string
	target string
}

type Dispatcher struct {
	baseURL string
	client  *http.Client
	notify  func(Notification)

	mu       sync.Mutex
	criteria models.PlanCriteria
	plans    []models.PaymentPlan
	total    int
	pending  *pendingAction
	inFlight map[string]bool
	states   map[string]State
}

// NewDispatcher construit un dispatcher lié à l'API d'administration. notify
// peut être nil si l'appelant ne veut pas de notifications.
func NewDispatcher(baseURL string, client *http.Client, notify func(Notification)) *Dispatcher {
	if client == nil {
		client = http.DefaultClient
	}
	if notify == nil {
		notify = func(Notification) {}
	}
	return &Dispatcher{
		baseURL:  baseURL,
		client:   client,
		notify:   notify,
		inFlight: make(map[string]bool),
		states:   make(map[string]State),
	}
}

// SetCriteria fixe les critères encodés dans les rafraîchissements de liste
func (d *Dispatcher) SetCriteria(criteria models.PlanCriteria) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.criteria = criteria
}

// Plans retourne la dernière liste récupérée
func (d *Dispatcher) Plans() []models.PaymentPlan {
	d.mu.Lock()
	defer d.mu.Unlock()
	plans := make([]models.PaymentPlan, len(d.plans))
	copy(plans, d.plans)
	return plans
}

// Total retourne le nombre total de plans correspondant aux critères,
// avant pagination
func (d *Dispatcher) Total() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.total
}

// State retourne l'état courant du couple plan/action
func (d *Dispatcher) State(planID string, kind ActionKind) State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.states[stateKey(planID, kind)]
}

// Refresh recharge la liste des plans depuis l'API avec les critères
// courants. En cas d'échec la liste précédente est conservée telle quelle.
func (d *Dispatcher) Refresh(ctx context.Context) error {
	d.mu.Lock()
	criteria := d.criteria
	d.mu.Unlock()

	url := d.baseURL + "/api/v1/installments"
	if encoded := criteria.Values().Encode(); encoded != "" {
		url += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching payment plans: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fetching payment plans: unexpected status %d", resp.StatusCode)
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return fmt.Errorf("decoding payment plans: %w", err)
	}

	d.mu.Lock()
	d.plans = list.Data
	d.total = list.Total
	d.mu.Unlock()

	return nil
}

// RequestAction ouvre la confirmation d'une action sur un plan. Aucune
// requête réseau n'est émise à ce stade. L'action n'est disponible que pour
// un plan actif; une invocation pendant qu'une action du même plan est en vol
// est ignorée.
func (d *Dispatcher) RequestAction(kind ActionKind, planID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.inFlight[planID] {
		return nil
	}

	var plan *models.PaymentPlan
	for i := range d.plans {
		if d.plans[i].ID == planID {
			plan = &d.plans[i]
			break
		}
	}
	if plan == nil {
		return ErrPlanNotFound
	}
	if plan.Status != models.PlanActive {
		return ErrPlanNotActive
	}

	target := planID
	if kind == MarkNextPaid {
		if plan.NextPaymentID == nil {
			return ErrNoPendingInstallment
		}
		target = *plan.NextPaymentID
	}

	// Une seule confirmation ouverte à la fois; la précédente retombe à Idle
	if d.pending != nil {
		d.states[stateKey(d.pending.planID, d.pending.kind)] = Idle
	}

	d.pending = &pendingAction{kind: kind, planID: planID, target: target}
	d.states[stateKey(planID, kind)] = Confirming
	return nil
}

// Cancel referme la confirmation ouverte sans rien émettre
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending == nil {
		return
	}
	d.states[stateKey(d.pending.planID, d.pending.kind)] = Idle
	d.pending = nil
}

// Confirm émet exactement un appel réseau pour l'action en attente. Sur
// succès la liste est rafraîchie; sur échec elle reste inchangée et l'action
// peut être relancée via RequestAction.
func (d *Dispatcher) Confirm(ctx context.Context) error {
	d.mu.Lock()
	if d.pending == nil {
		d.mu.Unlock()
		return ErrNoPendingAction
	}
	action := *d.pending
	d.pending = nil
	key := stateKey(action.planID, action.kind)
	d.states[key] = InFlight
	d.inFlight[action.planID] = true
	d.mu.Unlock()

	err := d.post(ctx, action)

	d.mu.Lock()
	delete(d.inFlight, action.planID)
	if err != nil {
		d.states[key] = Failed
	} else {
		d.states[key] = Succeeded
	}
	d.mu.Unlock()

	if err != nil {
		d.notify(Notification{Success: false, Message: failureMessages[action.kind]})
		return err
	}

	d.notify(Notification{Success: true, Message: successMessages[action.kind]})

	// La liste est la seule source de vérité: pas de mutation locale,
	// on recharge. Un échec de rechargement laisse l'ancienne liste.
	_ = d.Refresh(ctx)

	return nil
}

func (d *Dispatcher) post(ctx context.Context, action pendingAction) error {
	url := d.baseURL + "/api/v1/installments/" + action.target + actionPath(action.kind)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrActionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrActionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %d", ErrActionFailed, resp.StatusCode)
	}
	return nil
}

func actionPath(kind ActionKind) string {
	switch kind {
	case MarkNextPaid:
		return "/mark-paid"
	case CancelPlan:
		return "/cancel"
	default:
		return "/reminder"
	}
}

func stateKey(planID string, kind ActionKind) string {
	return planID + "/" + string(kind)
}
