package models

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type PlanStatus string

const (
	PlanActive    PlanStatus = "ACTIVE"
	PlanCompleted PlanStatus = "COMPLETED"
	PlanCancelled PlanStatus = "CANCELLED"
)

// PaymentPlan représente un plan de paiement échelonné pour une inscription.
// Les informations client/enfant sont des copies figées au moment de la
// souscription, pas des références vivantes.
type PaymentPlan struct {
	ID                string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerFirstName string          `json:"customerFirstName" gorm:"column:customer_first_name"`
	CustomerLastName  string          `json:"customerLastName" gorm:"column:customer_last_name"`
	CustomerEmail     string          `json:"customerEmail" gorm:"column:customer_email"`
	ChildFirstName    string          `json:"childFirstName" gorm:"column:child_first_name"`
	ChildLastName     string          `json:"childLastName" gorm:"column:child_last_name"`
	ClassName         string          `json:"className" gorm:"column:class_name"`
	ProgramID         *string         `json:"programId,omitempty" gorm:"column:program_id;type:uuid"`
	TotalAmount       decimal.Decimal `json:"totalAmount" gorm:"column:total_amount;type:numeric(10,2)"`
	AmountPaid        decimal.Decimal `json:"amountPaid" gorm:"column:amount_paid;type:numeric(10,2)"`
	PaidCount         int             `json:"paidCount" gorm:"column:paid_count"`
	TotalCount        int             `json:"totalCount" gorm:"column:total_count"`
	NextDueDate       *time.Time      `json:"nextDueDate" gorm:"column:next_due_date"`
	NextPaymentID     *string         `json:"nextPaymentId" gorm:"column:next_payment_id;type:uuid"`
	Status            PlanStatus      `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func (PaymentPlan) TableName() string {
	return "payment_plans"
}

// IsOverdue indique si la prochaine échéance du plan est dépassée à l'instant
// donné. L'instant est injecté par l'appelant, jamais lu depuis l'horloge
// globale. Un plan non actif n'est jamais en retard, même si une date
// d'échéance périmée subsiste en base.
func (p PaymentPlan) IsOverdue(now time.Time) bool {
	if p.Status != PlanActive || p.NextDueDate == nil {
		return false
	}
	return p.NextDueDate.Before(now)
}

// DueDateLabel retourne le libellé d'échéance affiché dans le tableau:
// "OVERDUE" si dépassée, "-" si aucune échéance restante, sinon la date.
func (p PaymentPlan) DueDateLabel(now time.Time) string {
	if p.IsOverdue(now) {
		return "OVERDUE"
	}
	if p.NextDueDate == nil {
		return "-"
	}
	return p.NextDueDate.Format("2006-01-02")
}

// Installment représente une échéance individuelle d'un plan de paiement
type Installment struct {
	ID            string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	PaymentPlanID string          `json:"paymentPlanId" gorm:"column:payment_plan_id;type:uuid;not null"`
	Position      int             `json:"position"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(10,2)"`
	DueDate       time.Time       `json:"dueDate" gorm:"column:due_date"`
	PaidAt        *time.Time      `json:"paidAt" gorm:"column:paid_at"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (Installment) TableName() string {
	return "installments"
}

// ReminderLog trace chaque relance de paiement envoyée à un client
type ReminderLog struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid"`
	PaymentPlanID string    `json:"paymentPlanId" gorm:"column:payment_plan_id;type:uuid;not null"`
	SentTo        string    `json:"sentTo" gorm:"column:sent_to"`
	SentAt        time.Time `json:"sentAt" gorm:"column:sent_at"`
}

func (ReminderLog) TableName() string {
	return "reminder_logs"
}

// PlanCriteria regroupe les critères de filtrage des plans de paiement.
// La même forme sert côté serveur (paramètres de requête entrants) et côté
// client (encodage des paramètres sortants).
type PlanCriteria struct {
	Search      string
	Status      PlanStatus
	OverdueOnly bool
	Page        int
	PageSize    int
}

// Values encode les critères en query string: status, overdue, search, page.
// Les critères à leur valeur zéro sont omis; un paramètre overdue absent
// équivaut à overdue=false côté serveur.
func (c PlanCriteria) Values() url.Values {
	v := url.Values{}
	if c.Status != "" {
		v.Set("status", string(c.Status))
	}
	if c.OverdueOnly {
		v.Set("overdue", "true")
	}
	if c.Search != "" {
		v.Set("search", c.Search)
	}
	if c.Page > 0 {
		v.Set("page", strconv.Itoa(c.Page))
	}
	if c.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(c.PageSize))
	}
	return v
}
