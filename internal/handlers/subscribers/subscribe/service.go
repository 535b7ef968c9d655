// internal/handlers/subscribers/subscribe/service.go
package subscribe

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/validation"
	"therapy-paws/internal/models"
)

// ConfirmationSender is implemented by the notification email service.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, email, name string) bool
}

type Service struct {
	logger       logger.Logger
	db           *sql.DB
	confirmation ConfirmationSender
}

func NewService(db *sql.DB, confirmation ConfirmationSender, log logger.Logger) *Service {
	return &Service{
		logger:       log,
		db:           db,
		confirmation: confirmation,
	}
}

// Execute stores the signup and then sends the confirmation email as a
// best-effort side effect. The subscriber row exists whether or not the
// confirmation goes out.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !validation.ValidateEmail(email) {
		return nil, errors.NewValidationFailedError("email is not a valid email address")
	}

	preferences := models.DefaultPreferences()
	if input.Preferences != nil {
		preferences = *input.Preferences
	}
	preferencesJSON, err := json.Marshal(preferences)
	if err != nil {
		return nil, errors.NewValidationFailedError("preferences could not be encoded")
	}

	subscriberID := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	query := `
		INSERT INTO email_subscribers (id, email, name, verified, preferences, subscribed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = s.db.ExecContext(ctx, query,
		subscriberID,
		email,
		nullIfEmpty(input.Name),
		false,
		preferencesJSON,
		now,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, errors.NewDuplicateSubscriberError(email)
		}
		s.logger.Error("subscriber insert failed", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	confirmationSent := s.confirmation.SendConfirmation(ctx, email, input.Name)

	s.logger.Info("subscriber created", map[string]interface{}{
		"subscriberId":     subscriberID,
		"confirmationSent": confirmationSent,
	})

	return &Output{
		Success:          true,
		SubscriberID:     subscriberID,
		ConfirmationSent: confirmationSent,
	}, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
