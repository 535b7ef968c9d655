// internal/handlers/booking/send-appointment-notification/service.go
package sendappointmentnotification

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

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

// Execute loads the appointment and emails the admin. Customer confirmation
// is not sent yet; appointments carry no customer email address, so the
// flag always comes back false.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.AppointmentID) == "" {
		return nil, errors.NewValidationFailedError("appointmentId is required")
	}

	appointment, err := s.loadAppointment(ctx, input.AppointmentID)
	if err != nil {
		return nil, err
	}

	outcome := s.mailer.Send(ctx, mail.Message{
		FromName:  s.config.FromName,
		FromEmail: s.config.FromEmail,
		ToEmail:   s.config.AdminEmail,
		Subject:   fmt.Sprintf("New Appointment Booking - %s", s.config.SiteName),
		HTMLBody:  adminNotificationBody(appointment),
		Kind:      "admin_appointment",
	})
	if !outcome.Sent {
		s.logger.Warn("admin appointment notification failed", map[string]interface{}{
			"appointmentId": input.AppointmentID,
			"error":         outcome.Error,
		})
	}

	return &Output{
		Success:                  true,
		AdminNotificationSent:    outcome.Sent,
		CustomerConfirmationSent: false,
	}, nil
}

// NotifyNewAppointment is the best-effort entry used by the booking flow.
// It never returns an error; failures show up as a false flag.
func (s *Service) NotifyNewAppointment(ctx context.Context, appointmentID string) bool {
	output, err := s.Execute(ctx, &Input{AppointmentID: appointmentID})
	if err != nil {
		s.logger.Warn("appointment notification skipped", map[string]interface{}{
			"appointmentId": appointmentID,
			"error":         err.Error(),
		})
		return false
	}
	return output.AdminNotificationSent
}

func (s *Service) loadAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var a models.Appointment
	var notes sql.NullString

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, business_name, contact_number, location,
			appointment_date, appointment_time, notes, created_at
		FROM appointments
		WHERE id = $1`,
		appointmentID,
	).Scan(
		&a.ID,
		&a.Name,
		&a.BusinessName,
		&a.ContactNumber,
		&a.Location,
		&a.AppointmentDate,
		&a.AppointmentTime,
		&notes,
		&a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewAppointmentNotFoundError(appointmentID)
	}
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}

	a.Notes = notes.String
	return &a, nil
}

func adminNotificationBody(a *models.Appointment) string {
	var b strings.Builder
	b.WriteString("<h2>New Appointment Booking</h2>")
	b.WriteString("<p>A new appointment has been scheduled:</p>")
	b.WriteString("<h3>Appointment Details:</h3><ul>")
	fmt.Fprintf(&b, "<li><strong>Date:</strong> %s</li>", a.AppointmentDate)
	fmt.Fprintf(&b, "<li><strong>Time:</strong> %s</li>", a.AppointmentTime)
	fmt.Fprintf(&b, "<li><strong>Location:</strong> %s</li>", a.Location)
	b.WriteString("</ul><h3>Contact Information:</h3><ul>")
	fmt.Fprintf(&b, "<li><strong>Name:</strong> %s</li>", a.Name)
	fmt.Fprintf(&b, "<li><strong>Business:</strong> %s</li>", a.BusinessName)
	fmt.Fprintf(&b, "<li><strong>Phone:</strong> %s</li>", a.ContactNumber)
	b.WriteString("</ul>")
	if a.Notes != "" {
		fmt.Fprintf(&b, "<h3>Notes:</h3><p>%s</p>", a.Notes)
	}
	b.WriteString("<p>Please contact the client to confirm the appointment details.</p>")
	return b.String()
}
