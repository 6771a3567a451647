package installments

import (
	"errors"
	"net/http"
	"time"

	"sportadmin-backend/db"
	"sportadmin-backend/models"
	"sportadmin-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInstallmentNotFound = errors.New("installment not found")
	ErrAlreadyPaid         = errors.New("installment already paid")
	ErrPlanNotFound        = errors.New("payment plan not found")
	ErrPlanNotActive       = errors.New("payment plan is not active")
)

// MarkPaidByID enregistre le paiement d'une échéance et fait avancer le plan:
// montants et compteur mis à jour, prochaine échéance recalculée, plan clôturé
// quand la dernière échéance est payée. L'échéance et le plan sont écrits dans
// une même transaction. Partagé entre l'action admin et le webhook Stripe.
func MarkPaidByID(installmentID string, now time.Time) (*models.PaymentPlan, error) {
	var plan models.PaymentPlan

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var installment models.Installment
		if err := tx.First(&installment, "id = ?", installmentID).Error; err != nil {
			return ErrInstallmentNotFound
		}

		if installment.PaidAt != nil {
			return ErrAlreadyPaid
		}

		if err := tx.First(&plan, "id = ?", installment.PaymentPlanID).Error; err != nil {
			return ErrPlanNotFound
		}

		if plan.Status != models.PlanActive {
			return ErrPlanNotActive
		}

		installment.PaidAt = &now
		if err := tx.Save(&installment).Error; err != nil {
			return err
		}

		plan.AmountPaid = plan.AmountPaid.Add(installment.Amount)
		plan.PaidCount++

		var next models.Installment
		err := tx.Where("payment_plan_id = ? AND paid_at IS NULL AND id <> ?", plan.ID, installment.ID).
			Order("position ASC").
			First(&next).Error
		switch {
		case err == nil:
			plan.NextDueDate = &next.DueDate
			plan.NextPaymentID = &next.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Dernière échéance payée: le plan est terminé
			plan.NextDueDate = nil
			plan.NextPaymentID = nil
			plan.Status = models.PlanCompleted
		default:
			return err
		}

		return tx.Save(&plan).Error
	})
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// @Summary Mark an installment as paid
// @Description Mark the given installment as paid and advance its payment plan
// @Tags installments
// @Produce json
// @Param id path string true "Installment ID"
// @Success 200 {object} map[string]bool "success: true"
// @Failure 404 {object} map[string]string "message: Installment not found"
// @Failure 409 {object} map[string]string "message: Conflict"
// @Failure 500 {object} map[string]string "message: Error message"
// @Router /installments/{id}/mark-paid [post]
func MarkInstallmentPaid(c *gin.Context) {
	installmentID := c.Param("id")

	_, err := MarkPaidByID(installmentID, time.Now())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, ErrInstallmentNotFound), errors.Is(err, ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, ErrAlreadyPaid), errors.Is(err, ErrPlanNotActive):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		utils.LogError(err, "Error marking installment as paid")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error marking installment as paid"})
	}
}

// @Summary Cancel a payment plan
// @Description Cancel an active payment plan; no further actions are permitted afterwards
// @Tags installments
// @Produce json
// @Param id path string true "Payment plan ID"
// @Success 200 {object} map[string]bool "success: true"
// @Failure 404 {object} map[string]string "message: Payment plan not found"
// @Failure 409 {object} map[string]string "message: Payment plan is not active"
// @Failure 500 {object} map[string]string "message: Error message"
// @Router /installments/{id}/cancel [post]
func CancelPlan(c *gin.Context) {
	planID := c.Param("id")

	var plan models.PaymentPlan
	if err := db.DB.First(&plan, "id = ?", planID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Payment plan not found"})
		return
	}

	if plan.Status != models.PlanActive {
		c.JSON(http.StatusConflict, gin.H{"message": "Payment plan is not active"})
		return
	}

	plan.Status = models.PlanCancelled
	plan.NextDueDate = nil
	plan.NextPaymentID = nil

	if err := db.DB.Save(&plan).Error; err != nil {
		utils.LogError(err, "Error cancelling payment plan")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error cancelling payment plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Send a payment reminder
// @Description Send a reminder email for the next due installment of an active plan
// @Tags installments
// @Produce json
// @Param id path string true "Payment plan ID"
// @Success 200 {object} map[string]bool "success: true"
// @Failure 404 {object} map[string]string "message: Payment plan not found"
// @Failure 409 {object} map[string]string "message: Conflict"
// @Failure 500 {object} map[string]string "message: Error message"
// @Router /installments/{id}/reminder [post]
func SendReminder(c *gin.Context) {
	planID := c.Param("id")

	var plan models.PaymentPlan
	if err := db.DB.First(&plan, "id = ?", planID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Payment plan not found"})
		return
	}

	if plan.Status != models.PlanActive {
		c.JSON(http.StatusConflict, gin.H{"message": "Payment plan is not active"})
		return
	}
	if plan.NextDueDate == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "No pending installment to remind about"})
		return
	}

	reminder := models.ReminderLog{
		ID:            uuid.NewString(),
		PaymentPlanID: plan.ID,
		SentTo:        plan.CustomerEmail,
		SentAt:        time.Now(),
	}
	if err := db.DB.Create(&reminder).Error; err != nil {
		utils.LogError(err, "Error recording payment reminder")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error sending payment reminder"})
		return
	}

	customerName := plan.CustomerFirstName + " " + plan.CustomerLastName
	remaining := plan.TotalAmount.Sub(plan.AmountPaid)
	if err := utils.SendReminderMail(plan.CustomerEmail, customerName, plan.ClassName, *plan.NextDueDate, remaining); err != nil {
		// L'envoi du mail est best-effort, la relance est déjà tracée
		utils.LogError(err, "Failed to send reminder email")
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
