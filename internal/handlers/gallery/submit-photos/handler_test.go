package submitphotos

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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
		FromEmail:  "notifications@therapypaws.org",
		FromName:   "Therapy Paws",
		AdminEmail: "admin@therapypaws.org",
		SiteName:   "Therapy Paws",
	}
}

func validInput() *Input {
	return &Input{
		PhotoURLs:      []string{"https://cdn.example.com/photo-1.jpg", "https://cdn.example.com/photo-2.jpg"},
		EventDate:      "2026-05-14",
		Story:          "Visit to Oakwood Primary",
		SubmitterName:  "Sam Carter",
		SubmitterEmail: "sam@example.com",
	}
}

func TestService_Execute_InsertThenAdminEmail(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectExec("INSERT INTO photo_submissions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "2026-05-14", "Visit to Oakwood Primary",
			"Sam Carter", "sam@example.com", "pending", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		return msg.ToEmail == "admin@therapypaws.org" &&
			msg.Subject == "New Photo Submission - Therapy Paws Gallery"
	})).Return(mail.SendOutcome{Sent: true, MessageID: "msg-1"}).Once()

	service := NewService(createValidConfig(), db, mailer, logger.NewNoOpLogger())
	output, err := service.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.NotEmpty(t, output.SubmissionID)
	assert.True(t, output.AdminNotificationSent)
	assert.NoError(t, dbMock.ExpectationsWereMet())
	mailer.AssertExpectations(t)
}

func TestService_Execute_EmailFailureKeepsSubmission(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectExec("INSERT INTO photo_submissions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.Anything).
		Return(mail.SendOutcome{Sent: false, Error: "sendgrid status 500"})

	service := NewService(createValidConfig(), db, mailer, logger.NewNoOpLogger())
	output, err := service.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.False(t, output.AdminNotificationSent)
}

func TestService_Execute_InsertFailure(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectExec("INSERT INTO photo_submissions").
		WillReturnError(fmt.Errorf("connection reset"))

	mailer := new(MockMailer)
	service := NewService(createValidConfig(), db, mailer, logger.NewNoOpLogger())
	_, err = service.Execute(context.Background(), validInput())

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeDatabaseInsertFailed, stdErr.Code)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestService_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(input *Input)
	}{
		{"no photos", func(input *Input) { input.PhotoURLs = nil }},
		{"bad photo URL", func(input *Input) { input.PhotoURLs = []string{"not-a-url"} }},
		{"missing event date", func(input *Input) { input.EventDate = "" }},
		{"bad event date format", func(input *Input) { input.EventDate = "14/05/2026" }},
		{"bad submitter email", func(input *Input) { input.SubmitterEmail = "nope" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			service := NewService(createValidConfig(), nil, new(MockMailer), logger.NewNoOpLogger())
			_, err := service.Execute(context.Background(), input)

			require.Error(t, err)
			stdErr, ok := err.(*errors.StandardError)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
		})
	}
}

func TestService_AdminNotificationBody_OptionalSections(t *testing.T) {
	service := NewService(createValidConfig(), nil, new(MockMailer), logger.NewNoOpLogger())

	full := service.adminNotificationBody(validInput(), "sub-1")
	assert.Contains(t, full, "Sam Carter")
	assert.Contains(t, full, "Visit to Oakwood Primary")
	assert.Contains(t, full, "Submission ID:</strong> sub-1")

	bare := service.adminNotificationBody(&Input{
		PhotoURLs: []string{"https://cdn.example.com/photo-1.jpg"},
		EventDate: "2026-05-14",
	}, "sub-2")
	assert.NotContains(t, bare, "Submitted by")
	assert.NotContains(t, bare, "Story")
}
