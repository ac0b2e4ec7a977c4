package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/nvoronin/expense-service/internal/config"
	"github.com/nvoronin/expense-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendBudgetAlert notifies a user that the month-to-date expense total
// has exceeded their monthly budget.
func (s *Sender) SendBudgetAlert(to, name, currency string, year int, month time.Month, spentCents, budgetCents int64) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Monthly Budget Exceeded — %s %d", month, year)

	body := fmt.Sprintf(
		"Dear %s,\n\n", name,
	)
	body += fmt.Sprintf(
		"Your expenses for %s %d have reached %s %s, which exceeds your monthly budget of %s %s.\n"+
			"Review your recent transactions to stay on track.\n",
		month, year, models.FormatCents(spentCents), currency, models.FormatCents(budgetCents), currency,
	)
	body += "\nBest regards,\nExpense Service"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send budget alert to %s: %v", to, err)
		return fmt.Errorf("failed to send budget alert: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
