// internal/handlers/gallery/submit-photos/service.go
package submitphotos

import (
	"context"
	"database/sql"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/mail"
	"therapy-paws/internal/common/validation"
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

// Execute stores the submission for review and notifies the admin. The
// submission row is the source of truth; the admin email is best-effort.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	submissionID := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	query := `
		INSERT INTO photo_submissions
			(id, photo_urls, event_date, story, submitted_by_name, submitted_by_email, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		submissionID,
		pq.Array(input.PhotoURLs),
		input.EventDate,
		nullIfEmpty(input.Story),
		nullIfEmpty(input.SubmitterName),
		nullIfEmpty(input.SubmitterEmail),
		models.PhotoStatusPending,
		now,
	)
	if err != nil {
		s.logger.Error("photo submission insert failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	outcome := s.mailer.Send(ctx, mail.Message{
		FromName:  s.config.FromName,
		FromEmail: s.config.FromEmail,
		ToEmail:   s.config.AdminEmail,
		Subject:   fmt.Sprintf("New Photo Submission - %s Gallery", s.config.SiteName),
		HTMLBody:  s.adminNotificationBody(input, submissionID),
		Kind:      "admin_photo_submission",
	})
	if !outcome.Sent {
		s.logger.Warn("photo submission admin email failed", map[string]interface{}{
			"submissionId": submissionID,
			"error":        outcome.Error,
		})
	}

	s.logger.Info("photo submission created", map[string]interface{}{
		"submissionId": submissionID,
		"photoCount":   len(input.PhotoURLs),
	})

	return &Output{
		Success:               true,
		SubmissionID:          submissionID,
		AdminNotificationSent: outcome.Sent,
	}, nil
}

func (s *Service) validate(input *Input) error {
	if len(input.PhotoURLs) == 0 {
		return errors.NewValidationFailedError("at least one photo URL is required")
	}
	for _, photoURL := range input.PhotoURLs {
		if !validation.ValidateURL(photoURL) {
			return errors.NewValidationFailedError("photo URLs must be valid http(s) URLs")
		}
	}
	if !validation.ValidateDate(input.EventDate) {
		return errors.NewValidationFailedError("eventDate must be in YYYY-MM-DD format")
	}
	if input.SubmitterEmail != "" && !validation.ValidateEmail(input.SubmitterEmail) {
		return errors.NewValidationFailedError("submitterEmail is not a valid email address")
	}
	return nil
}

func (s *Service) adminNotificationBody(input *Input, submissionID string) string {
	var b strings.Builder

	b.WriteString("<h2>New Photo Submission</h2>")
	b.WriteString("<p>A new photo submission has been received for the gallery:</p>")
	b.WriteString("<h3>Submission Details:</h3><ul>")
	fmt.Fprintf(&b, "<li><strong>Event Date:</strong> %s</li>", html.EscapeString(input.EventDate))
	fmt.Fprintf(&b, "<li><strong>Number of Photos:</strong> %d</li>", len(input.PhotoURLs))
	if input.SubmitterName != "" {
		fmt.Fprintf(&b, "<li><strong>Submitted by:</strong> %s</li>", html.EscapeString(input.SubmitterName))
	}
	if input.SubmitterEmail != "" {
		fmt.Fprintf(&b, "<li><strong>Email:</strong> %s</li>", html.EscapeString(input.SubmitterEmail))
	}
	b.WriteString("</ul>")
	if input.Story != "" {
		fmt.Fprintf(&b, "<h3>Story:</h3><p>%s</p>", html.EscapeString(input.Story))
	}
	b.WriteString("<p>Please review and approve/reject this submission in the admin dashboard.</p>")
	fmt.Fprintf(&b, "<p><strong>Submission ID:</strong> %s</p>", submissionID)

	return b.String()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
