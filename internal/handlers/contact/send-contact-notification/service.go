// internal/handlers/contact/send-contact-notification/service.go
package sendcontactnotification

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/mail"
	"therapy-paws/internal/common/validation"
)

type Service struct {
	config *Config
	logger logger.Logger
	db     *sql.DB
	mailer mail.Mailer
}

func NewService(config *Config, db *sql.DB, mailer mail.Mailer, log logger.Logger) *Service {
	return &Service{
		config: config,
		logger: log,
		db:     db,
		mailer: mailer,
	}
}

// Execute stores the submission, then sends the admin notification and the
// customer confirmation. The insert is the hard requirement; both emails
// are best-effort and reported through response flags.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if !validation.ValidateEmail(input.Email) {
		return nil, errors.NewValidationFailedError("email is not a valid email address")
	}

	submissionID := uuid.New().String()
	createdAt := time.Now().UTC().Format(time.RFC3339)

	var structuredJSON interface{}
	if input.StructuredAddress != nil {
		if data, err := json.Marshal(input.StructuredAddress); err == nil {
			structuredJSON = data
		}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_submissions (
			id, first_name, last_name, email, phone, organization,
			address, subject, message, structured_address, coordinates, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		submissionID,
		input.FirstName,
		input.LastName,
		input.Email,
		nullIfEmpty(input.Phone),
		nullIfEmpty(input.Organization),
		nullIfEmpty(input.Address),
		input.Subject,
		input.Message,
		structuredJSON,
		nullIfEmpty(input.Coordinates),
		createdAt,
	)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	adminOutcome := s.mailer.Send(ctx, mail.Message{
		FromName:  s.config.FromName,
		FromEmail: s.config.FromEmail,
		ToEmail:   s.config.AdminEmail,
		Subject:   fmt.Sprintf("New Contact Form Submission: %s", input.Subject),
		HTMLBody:  adminNotificationBody(input),
		Kind:      "admin_contact",
	})
	if !adminOutcome.Sent {
		s.logger.Warn("admin contact notification failed", map[string]interface{}{
			"submissionId": submissionID,
			"error":        adminOutcome.Error,
		})
	}

	customerOutcome := s.mailer.Send(ctx, mail.Message{
		FromName:  s.config.HelloName,
		FromEmail: s.config.HelloEmail,
		ToName:    input.FirstName + " " + input.LastName,
		ToEmail:   input.Email,
		Subject:   fmt.Sprintf("Your contact information has been recorded - %s", s.config.SiteName),
		HTMLBody:  customerConfirmationBody(input, s.config),
		Kind:      "contact_confirmation",
	})
	if !customerOutcome.Sent {
		s.logger.Warn("contact confirmation failed", map[string]interface{}{
			"submissionId": submissionID,
			"error":        customerOutcome.Error,
		})
	}

	s.logger.Info("contact submission recorded", map[string]interface{}{
		"submissionId": submissionID,
		"subject":      input.Subject,
	})

	return &Output{
		Success:                  true,
		AdminNotificationSent:    adminOutcome.Sent,
		CustomerConfirmationSent: customerOutcome.Sent,
	}, nil
}

func adminNotificationBody(input *Input) string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>")
	b.WriteString("<p>A new contact form has been submitted:</p>")
	b.WriteString("<h3>Contact Information:</h3><ul>")
	fmt.Fprintf(&b, "<li><strong>Name:</strong> %s %s</li>", input.FirstName, input.LastName)
	fmt.Fprintf(&b, "<li><strong>Email:</strong> %s</li>", input.Email)
	if input.Phone != "" {
		fmt.Fprintf(&b, "<li><strong>Phone:</strong> %s</li>", input.Phone)
	}
	if input.Organization != "" {
		fmt.Fprintf(&b, "<li><strong>Organization:</strong> %s</li>", input.Organization)
	}
	if input.Address != "" {
		fmt.Fprintf(&b, "<li><strong>Address:</strong> %s</li>", input.Address)
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<h3>Subject:</h3><p>%s</p>", input.Subject)
	fmt.Fprintf(&b, "<h3>Message:</h3><p style=\"white-space: pre-wrap;\">%s</p>", input.Message)
	b.WriteString("<p>Please respond to this inquiry within 24-48 hours.</p>")
	return b.String()
}

func customerConfirmationBody(input *Input, cfg *Config) string {
	var b strings.Builder
	b.WriteString("<h2>Thank You for Contacting Us!</h2>")
	fmt.Fprintf(&b, "<p>Hello %s,</p>", input.FirstName)
	b.WriteString("<p>We have received your message and will reach out within 24-48 hours.</p>")
	b.WriteString("<h3>Your Message:</h3><ul>")
	fmt.Fprintf(&b, "<li><strong>Subject:</strong> %s</li>", input.Subject)
	b.WriteString("<li><strong>Message:</strong></li></ul>")
	fmt.Fprintf(&b, "<p style=\"white-space: pre-wrap; background: #f5f5f5; padding: 10px; border-radius: 5px;\">%s</p>", input.Message)
	if cfg.ContactPhone != "" {
		fmt.Fprintf(&b, "<p>If you need immediate assistance, please call us at %s.</p>", cfg.ContactPhone)
	}
	fmt.Fprintf(&b, "<p>Best regards,<br>%s Team</p>", cfg.SiteName)
	return b.String()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
