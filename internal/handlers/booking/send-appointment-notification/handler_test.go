package sendappointmentnotification

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/mail"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mail.Message) mail.SendOutcome {
	args := m.Called(ctx, msg)
	return args.Get(0).(mail.SendOutcome)
}

func createValidConfig() *Config {
	return &Config{
		AdminEmail: "admin@therapypaws.org",
		FromEmail:  "notifications@therapypaws.org",
		FromName:   "Therapy Paws",
		SiteName:   "Therapy Paws",
	}
}

func appointmentColumns() []string {
	return []string{
		"id", "name", "business_name", "contact_number", "location",
		"appointment_date", "appointment_time", "notes", "created_at",
	}
}

func TestService_Execute_SendsAdminEmail(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT id, name, business_name").
		WithArgs("appt-1").
		WillReturnRows(sqlmock.NewRows(appointmentColumns()).AddRow(
			"appt-1", "Jane Doe", "Sunrise Care Home", "5551234567",
			"12 Elm Street, Springfield", "2026-09-15", "10:00:00",
			"Please use the side entrance", "2026-08-28T00:00:00Z",
		))

	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		return msg.ToEmail == "admin@therapypaws.org" &&
			msg.Kind == "admin_appointment" &&
			msg.Subject == "New Appointment Booking - Therapy Paws"
	})).Return(mail.SendOutcome{Sent: true, MessageID: "msg-1"})

	service := NewService(createValidConfig(), db, mailer, logger.NewNoOpLogger())
	output, err := service.Execute(context.Background(), &Input{AppointmentID: "appt-1"})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.True(t, output.AdminNotificationSent)
	assert.False(t, output.CustomerConfirmationSent)
	mailer.AssertExpectations(t)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_Execute_AppointmentNotFound(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT id, name, business_name").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(appointmentColumns()))

	mailer := new(MockMailer)
	service := NewService(createValidConfig(), db, mailer, logger.NewNoOpLogger())

	output, err := service.Execute(context.Background(), &Input{AppointmentID: "missing"})

	require.Error(t, err)
	assert.Nil(t, output)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeAppointmentNotFound, stdErr.Code)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

// Delivery failure is reflected in the flag, never in the error return.
func TestService_Execute_DeliveryFailureDoesNotFail(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT id, name, business_name").
		WithArgs("appt-2").
		WillReturnRows(sqlmock.NewRows(appointmentColumns()).AddRow(
			"appt-2", "John Roe", "Meadow School", "5559876543",
			"3 Oak Lane, Springfield", "2026-09-20", "14:00:00",
			nil, "2026-08-28T00:00:00Z",
		))

	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.Anything).
		Return(mail.SendOutcome{Sent: false, Error: "sendgrid status 503"})

	service := NewService(createValidConfig(), db, mailer, logger.NewNoOpLogger())
	output, err := service.Execute(context.Background(), &Input{AppointmentID: "appt-2"})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.False(t, output.AdminNotificationSent)
}

func TestService_NotifyNewAppointment_NeverErrors(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectQuery("SELECT id, name, business_name").
		WillReturnRows(sqlmock.NewRows(appointmentColumns()))

	service := NewService(createValidConfig(), db, new(MockMailer), logger.NewNoOpLogger())
	sent := service.NotifyNewAppointment(context.Background(), "gone")

	assert.False(t, sent)
}

func TestService_Execute_MissingAppointmentID(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	service := NewService(createValidConfig(), db, new(MockMailer), logger.NewNoOpLogger())
	_, err = service.Execute(context.Background(), &Input{})

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
}
