// Package mail wraps SendGrid for all transactional email. Sends are
// best-effort: callers receive an outcome, never a panic, and decide
// themselves whether delivery failure fails the operation.
package mail

import (
	"context"
	"fmt"
	"net/http"

	sendgrid "github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"therapy-paws/internal/common/config"
	"therapy-paws/internal/common/metrics"
)

// Message is one outbound transactional email.
type Message struct {
	FromName  string
	FromEmail string
	ToName    string
	ToEmail   string
	Subject   string
	HTMLBody  string
	PlainBody string
	// Kind labels the message for metrics and delivery logs
	// (e.g. "admin_appointment", "newsletter", "order_confirmation").
	Kind string
}

// SendOutcome reports the result of a best-effort send. Sent=false with a
// non-empty Error is a recorded failure, not a thrown one.
type SendOutcome struct {
	Sent      bool
	MessageID string
	Error     string
}

// Mailer sends transactional email.
type Mailer interface {
	Send(ctx context.Context, msg Message) SendOutcome
}

type sendGridMailer struct {
	client *sendgrid.Client
}

func NewSendGridMailer(cfg config.SendGridConfig) Mailer {
	return &sendGridMailer{
		client: sendgrid.NewSendClient(cfg.APIKey),
	}
}

func (m *sendGridMailer) Send(ctx context.Context, msg Message) SendOutcome {
	from := sgmail.NewEmail(msg.FromName, msg.FromEmail)
	to := sgmail.NewEmail(msg.ToName, msg.ToEmail)

	plain := msg.PlainBody
	if plain == "" {
		plain = " "
	}
	message := sgmail.NewSingleEmail(from, msg.Subject, to, plain, msg.HTMLBody)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		metrics.EmailDeliveries.WithLabelValues(msg.Kind, "failed").Inc()
		return SendOutcome{Sent: false, Error: err.Error()}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		metrics.EmailDeliveries.WithLabelValues(msg.Kind, "failed").Inc()
		return SendOutcome{
			Sent:  false,
			Error: fmt.Sprintf("sendgrid status %d: %s", resp.StatusCode, resp.Body),
		}
	}

	metrics.EmailDeliveries.WithLabelValues(msg.Kind, "sent").Inc()

	outcome := SendOutcome{Sent: true}
	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		outcome.MessageID = ids[0]
	}
	return outcome
}
