package routes

import (
	"sportadmin-backend/handlers/stripe"

	"github.com/gin-gonic/gin"
)

func StripeRoutes(r *gin.RouterGroup) {
	r.POST("/stripe/webhook", stripe.StripeWebhookHandler)
}
