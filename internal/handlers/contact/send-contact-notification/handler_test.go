package sendcontactnotification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/mail"
	"therapy-paws/internal/common/web"
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
		AdminEmail:   "admin@therapypaws.org",
		FromEmail:    "notifications@therapypaws.org",
		FromName:     "Therapy Paws",
		HelloEmail:   "hello@therapypaws.org",
		HelloName:    "Therapy Paws",
		SiteName:     "Therapy Paws",
		ContactPhone: "(209) 555-0142",
	}
}

func createValidInput() *Input {
	return &Input{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Subject:   "School visit inquiry",
		Message:   "We would love a visit for our students.",
	}
}

// ==========================
// Schema Tests
// ==========================

func TestGetInputSchema(t *testing.T) {
	schema := GetInputSchema()

	assert.Equal(t, "object", schema.Type)
	assert.Len(t, schema.Required, 5)
	assert.Contains(t, schema.Required, "firstName")
	assert.Contains(t, schema.Required, "lastName")
	assert.Contains(t, schema.Required, "email")
	assert.Contains(t, schema.Required, "subject")
	assert.Contains(t, schema.Required, "message")
	assert.True(t, schema.AdditionalProperties)
}

// ==========================
// Service Tests
// ==========================

func TestService_Execute_InsertThenBothEmails(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectExec("INSERT INTO contact_submissions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		return msg.Kind == "admin_contact" && msg.ToEmail == "admin@therapypaws.org"
	})).Return(mail.SendOutcome{Sent: true}).Once()
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg mail.Message) bool {
		return msg.Kind == "contact_confirmation" && msg.ToEmail == "jane@example.com"
	})).Return(mail.SendOutcome{Sent: true}).Once()

	service := NewService(createValidConfig(), db, mailer, logger.NewNoOpLogger())
	output, err := service.Execute(context.Background(), createValidInput())

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.True(t, output.AdminNotificationSent)
	assert.True(t, output.CustomerConfirmationSent)
	mailer.AssertExpectations(t)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_Execute_EmailFailuresOnlyClearFlags(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectExec("INSERT INTO contact_submissions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.Anything).
		Return(mail.SendOutcome{Sent: false, Error: "sendgrid status 500"}).Twice()

	service := NewService(createValidConfig(), db, mailer, logger.NewNoOpLogger())
	output, err := service.Execute(context.Background(), createValidInput())

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.False(t, output.AdminNotificationSent)
	assert.False(t, output.CustomerConfirmationSent)
}

func TestService_Execute_InsertFailureIsFatal(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectExec("INSERT INTO contact_submissions").
		WillReturnError(fmt.Errorf("disk full"))

	mailer := new(MockMailer)
	service := NewService(createValidConfig(), db, mailer, logger.NewNoOpLogger())

	output, err := service.Execute(context.Background(), createValidInput())

	require.Error(t, err)
	assert.Nil(t, output)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeDatabaseInsertFailed, stdErr.Code)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestService_Execute_InvalidEmail(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	input := createValidInput()
	input.Email = "not-an-email"

	service := NewService(createValidConfig(), db, new(MockMailer), logger.NewNoOpLogger())
	_, err = service.Execute(context.Background(), input)

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
}

// ==========================
// Handler Tests
// ==========================

func TestHandler_Handle_MissingFieldsListedTogether(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	log := logger.NewNoOpLogger()
	service := NewService(createValidConfig(), db, new(MockMailer), log)
	handler := NewHandler(service, log)

	router := gin.New()
	router.POST(Route, web.Wrap(log, handler.Handle))

	body, _ := json.Marshal(map[string]interface{}{
		"firstName": "Jane",
	})
	req := httptest.NewRequest(http.MethodPost, Route, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp web.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "lastName")
	assert.Contains(t, resp.Error, "email")
	assert.Contains(t, resp.Error, "subject")
	assert.Contains(t, resp.Error, "message")
}

func TestHandler_Handle_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectExec("INSERT INTO contact_submissions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.Anything).Return(mail.SendOutcome{Sent: true}).Twice()

	log := logger.NewNoOpLogger()
	service := NewService(createValidConfig(), db, mailer, log)
	handler := NewHandler(service, log)

	router := gin.New()
	router.POST(Route, web.Wrap(log, handler.Handle))

	body, _ := json.Marshal(createValidInput())
	req := httptest.NewRequest(http.MethodPost, Route, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Output
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}
