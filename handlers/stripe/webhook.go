package stripe

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"sportadmin-backend/handlers/installments"
	"sportadmin-backend/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeWebhookHandler traite les notifications de paiement Stripe. Un
// payment_intent réussi portant un installment_id applique la même transition
// que l'action admin mark-paid.
func StripeWebhookHandler(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Impossible de lire le corps de la requête"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret non configuré"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sig, secret)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vérification de la signature Stripe échouée"})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		handlePaymentIntentSucceeded(c, event)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Événement ignoré"})
	}
}

func handlePaymentIntentSucceeded(c *gin.Context, event stripe.Event) {
	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur parsing PaymentIntent"})
		return
	}

	installmentID := intent.Metadata["installment_id"]
	if installmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "installment_id manquant dans les metadata"})
		return
	}

	_, err := installments.MarkPaidByID(installmentID, time.Now())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Échéance marquée comme payée"})
	case errors.Is(err, installments.ErrAlreadyPaid):
		// Webhook rejoué par Stripe, rien à faire
		c.JSON(http.StatusOK, gin.H{"message": "Échéance déjà payée"})
	case errors.Is(err, installments.ErrInstallmentNotFound), errors.Is(err, installments.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, installments.ErrPlanNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.LogError(err, "Error applying Stripe payment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du traitement du paiement"})
	}
}
