package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// SendReminderMail envoie une relance de paiement au client. L'envoi est
// best-effort: l'appelant journalise l'erreur sans faire échouer l'action.
func SendReminderMail(email, customerName, className string, dueDate time.Time, amount decimal.Decimal) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP_HOST not configured")
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")

	body := fmt.Sprintf(
		"Subject: Payment reminder\r\n\r\n"+
			"Hello %s,\r\n\r\n"+
			"This is a reminder that an installment of %s EUR for %s is due on %s.\r\n\r\n"+
			"Best regards,\r\nThe administration team\r\n",
		customerName, amount.StringFixed(2), className, dueDate.Format("2006-01-02"))

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{email}, []byte(body))
}
