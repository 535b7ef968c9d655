// internal/handlers/booking/book-appointment/service.go
package bookappointment

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
)

// AdminNotifier sends the best-effort admin email after a booking lands.
type AdminNotifier interface {
	NotifyNewAppointment(ctx context.Context, appointmentID string) bool
}

type Service struct {
	logger   logger.Logger
	db       *sql.DB
	notifier AdminNotifier
}

func NewService(db *sql.DB, notifier AdminNotifier, log logger.Logger) *Service {
	return &Service{
		logger:   log,
		db:       db,
		notifier: notifier,
	}
}

// Execute validates the booking form, inserts the appointment and then
// notifies the admin. The write happens before the notification; a
// notification failure only clears the response flag.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	storedTime, err := validateInput(input, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	appointmentID := uuid.New().String()
	createdAt := time.Now().UTC().Format(time.RFC3339)

	var structuredJSON interface{}
	if input.StructuredAddress != nil {
		data, err := json.Marshal(input.StructuredAddress)
		if err != nil {
			s.logger.Warn("failed to marshal structured address", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			structuredJSON = data
		}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO appointments (
			id, name, business_name, contact_number, location,
			appointment_date, appointment_time, notes, structured_address, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		appointmentID,
		input.Name,
		input.BusinessName,
		input.ContactNumber,
		input.Location,
		input.AppointmentDate,
		storedTime,
		nullIfEmpty(input.Notes),
		structuredJSON,
		createdAt,
	)
	if err != nil {
		return nil, errors.NewDatabaseInsertFailedError(err)
	}

	s.logger.Info("appointment booked", map[string]interface{}{
		"appointmentId":   appointmentID,
		"appointmentDate": input.AppointmentDate,
		"appointmentTime": storedTime,
	})

	notified := s.notifier.NotifyNewAppointment(ctx, appointmentID)

	return &Output{
		Success:               true,
		AppointmentID:         appointmentID,
		AdminNotificationSent: notified,
	}, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
