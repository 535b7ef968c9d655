// internal/handlers/newsletter/send-newsletter/service.go
package sendnewsletter

import (
	"context"
	"database/sql"
	"fmt"
	"html"
	"net/url"
	"time"

	"github.com/google/uuid"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/mail"
	"therapy-paws/internal/models"
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

// Execute fans the newsletter out to every verified subscriber, one send at a
// time. Each delivery is logged to notification_logs; the newsletter row is
// marked sent once at the end of the run. Per-recipient failures never abort
// the loop, so sentCount+failedCount always equals totalSubscribers.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.NewsletterID == "" || input.Title == "" || input.Content == "" {
		return nil, errors.NewValidationFailedError("newsletterId, title and content are required")
	}

	if err := s.ensureNewsletterExists(ctx, input.NewsletterID); err != nil {
		return nil, err
	}

	recipients, err := s.loadVerifiedSubscribers(ctx)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, errors.NewNoVerifiedSubscribersError()
	}

	s.logger.Info("starting newsletter send", map[string]interface{}{
		"newsletterId": input.NewsletterID,
		"title":        input.Title,
		"subscribers":  len(recipients),
	})

	sentCount := 0
	failedCount := 0

	for _, recipient := range recipients {
		outcome := s.mailer.Send(ctx, mail.Message{
			FromName:  s.config.FromName,
			FromEmail: s.config.FromEmail,
			ToName:    recipient.Name,
			ToEmail:   recipient.Email,
			Subject:   input.Title,
			HTMLBody:  s.renderBody(input, recipient.Email),
			Kind:      "newsletter",
		})

		if outcome.Sent {
			sentCount++
			s.logDelivery(ctx, recipient.Email, input.Title, models.DeliveryStatusSent, outcome.MessageID, "")
			s.touchSubscriber(ctx, recipient.Email)
		} else {
			failedCount++
			s.logger.Warn("newsletter delivery failed", map[string]interface{}{
				"email": recipient.Email,
				"error": outcome.Error,
			})
			s.logDelivery(ctx, recipient.Email, input.Title, models.DeliveryStatusFailed, "", outcome.Error)
		}
	}

	s.markNewsletterSent(ctx, input.NewsletterID, sentCount)

	s.logger.Info("newsletter send complete", map[string]interface{}{
		"newsletterId": input.NewsletterID,
		"sent":         sentCount,
		"failed":       failedCount,
	})

	return &Output{
		Success:          true,
		SentCount:        sentCount,
		FailedCount:      failedCount,
		TotalSubscribers: len(recipients),
	}, nil
}

// ensureNewsletterExists keeps a fan-out from running against a newsletter id
// that has no row to mark sent afterwards.
func (s *Service) ensureNewsletterExists(ctx context.Context, newsletterID string) error {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM newsletters WHERE id = $1`, newsletterID).Scan(&id)
	if err == sql.ErrNoRows {
		return errors.NewNewsletterNotFoundError(newsletterID)
	}
	if err != nil {
		return errors.NewDatabaseQueryFailedError(err)
	}
	return nil
}

func (s *Service) loadVerifiedSubscribers(ctx context.Context) ([]recipient, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT email, COALESCE(name, '') FROM email_subscribers WHERE verified = true`)
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	defer rows.Close()

	var recipients []recipient
	for rows.Next() {
		var r recipient
		if err := rows.Scan(&r.Email, &r.Name); err != nil {
			return nil, errors.NewDatabaseQueryFailedError(err)
		}
		recipients = append(recipients, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}
	return recipients, nil
}

func (s *Service) renderBody(input *Input, email string) string {
	unsubscribe := fmt.Sprintf("%s?email=%s", s.config.UnsubscribeURL, url.QueryEscape(email))
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
<div style="text-align: center; margin-bottom: 30px;">
<h1 style="color: #2c5530; margin-bottom: 10px;">%s</h1>
<p style="color: #666; margin: 0;">Therapy Dog Visits</p>
</div>
<div style="background: #f9f9f9; padding: 30px; border-radius: 8px; margin-bottom: 30px;">
<h2 style="color: #2c5530; margin-top: 0;">%s</h2>
<div style="white-space: pre-line; color: #333;">%s</div>
</div>
<div style="text-align: center; padding-top: 20px; border-top: 1px solid #eee;">
<p style="color: #666; font-size: 14px; margin-bottom: 10px;">Thank you for subscribing to our newsletter!</p>
<p style="color: #666; font-size: 12px;"><a href="%s" style="color: #666; text-decoration: underline;">Unsubscribe</a></p>
</div>
</body>
</html>`,
		html.EscapeString(input.Title),
		html.EscapeString(s.config.SiteName),
		html.EscapeString(input.Title),
		html.EscapeString(input.Content),
		unsubscribe,
	)
}

// logDelivery is best-effort bookkeeping; a failed log row must not fail the
// delivery it describes.
func (s *Service) logDelivery(ctx context.Context, email, subject, status, messageID, errorMessage string) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notification_logs
			(id, subscriber_email, notification_type, subject, delivery_status, message_id, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New().String(),
		email,
		"newsletter",
		subject,
		status,
		nullIfEmpty(messageID),
		nullIfEmpty(errorMessage),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		s.logger.Warn("notification log insert failed", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
	}
}

func (s *Service) touchSubscriber(ctx context.Context, email string) {
	_, err := s.db.ExecContext(ctx,
		`UPDATE email_subscribers SET last_notification_sent = $1 WHERE email = $2`,
		time.Now().UTC().Format(time.RFC3339), email)
	if err != nil {
		s.logger.Warn("subscriber touch failed", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
	}
}

func (s *Service) markNewsletterSent(ctx context.Context, newsletterID string, sentCount int) {
	_, err := s.db.ExecContext(ctx, `
		UPDATE newsletters SET status = $1, sent_at = $2, sent_to_count = $3 WHERE id = $4`,
		models.NewsletterStatusSent,
		time.Now().UTC().Format(time.RFC3339),
		sentCount,
		newsletterID,
	)
	if err != nil {
		s.logger.Error("newsletter status update failed", map[string]interface{}{
			"newsletterId": newsletterID,
			"error":        err.Error(),
		})
	}
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
