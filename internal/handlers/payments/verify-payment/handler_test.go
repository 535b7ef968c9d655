package verifypayment

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"

	"therapy-paws/internal/common/config"
	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/pkg/catalog"
)

// ==========================
// Mocks
// ==========================

type MockCheckoutClient struct {
	mock.Mock
}

func (m *MockCheckoutClient) CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockCheckoutClient) GetSession(sessionID string) (*stripe.CheckoutSession, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

type MockSigner struct {
	mock.Mock
}

func (m *MockSigner) SignedDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

// ==========================
// Test Helpers
// ==========================

func testCatalog() *catalog.ProductCatalog {
	return &catalog.ProductCatalog{
		Version: "1",
		Products: []catalog.Product{
			{
				Name: "Ivy's Ebook",
				Files: []catalog.ProductFile{
					{Filename: "ivys-ebook.pdf", Key: "digital-products/ivys-ebook.pdf"},
				},
			},
			{
				Name: "Ivy's Ebook Training Guide",
				Files: []catalog.ProductFile{
					{Filename: "ivys-training-guide.pdf", Key: "digital-products/ivys-training-guide.pdf"},
				},
			},
		},
	}
}

func orderColumns() []string {
	return []string{
		"id", "customer_email", "product_name", "amount", "currency",
		"status", "stripe_session_id", "download_expires_at", "created_at", "updated_at",
	}
}

func newService(t *testing.T, checkout *MockCheckoutClient, signer *MockSigner) (*Service, sqlmock.Sqlmock, func()) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)

	service := NewService(&Config{DownloadWindow: 30 * 24 * time.Hour}, checkout, db, signer, testCatalog(), logger.NewNoOpLogger())
	return service, dbMock, func() { db.Close() }
}

func TestLoadConfig_DownloadWindowFromStorageConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.DownloadWindowDays = 30

	loaded := LoadConfig(cfg)
	assert.Equal(t, 30*24*time.Hour, loaded.DownloadWindow)
}

// ==========================
// Service Tests
// ==========================

func TestService_Execute_PaidSession(t *testing.T) {
	checkout := new(MockCheckoutClient)
	checkout.On("GetSession", "cs_paid").Return(&stripe.CheckoutSession{
		ID:            "cs_paid",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
	}, nil)

	signer := new(MockSigner)
	signer.On("SignedDownloadURL", mock.Anything, "digital-products/ivys-ebook.pdf").
		Return("https://bucket.s3.amazonaws.com/signed-ebook", nil)

	service, dbMock, cleanup := newService(t, checkout, signer)
	defer cleanup()

	dbMock.ExpectQuery("UPDATE orders").
		WithArgs("completed", sqlmock.AnyArg(), sqlmock.AnyArg(), "cs_paid").
		WillReturnRows(sqlmock.NewRows(orderColumns()).AddRow(
			"order-1", "buyer@example.com", "Ivy's Ebook", 1999, "usd",
			"completed", "cs_paid", "2026-09-27T00:00:00Z",
			"2026-08-28T00:00:00Z", "2026-08-28T00:00:00Z",
		))

	output, err := service.Execute(context.Background(), &Input{SessionID: "cs_paid"})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "order-1", output.Order.ID)
	assert.Equal(t, "completed", output.Order.Status)
	require.Len(t, output.DownloadURLs, 1)
	assert.Equal(t, "ivys-ebook.pdf", output.DownloadURLs[0].Filename)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/signed-ebook", output.DownloadURLs[0].URL)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

// An unpaid session leaves the order untouched.
func TestService_Execute_UnpaidSession(t *testing.T) {
	checkout := new(MockCheckoutClient)
	checkout.On("GetSession", "cs_unpaid").Return(&stripe.CheckoutSession{
		ID:            "cs_unpaid",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
	}, nil)

	service, dbMock, cleanup := newService(t, checkout, new(MockSigner))
	defer cleanup()

	output, err := service.Execute(context.Background(), &Input{SessionID: "cs_unpaid"})

	require.Error(t, err)
	assert.Nil(t, output)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodePaymentIncomplete, stdErr.Code)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_Execute_OrderNotFound(t *testing.T) {
	checkout := new(MockCheckoutClient)
	checkout.On("GetSession", "cs_orphan").Return(&stripe.CheckoutSession{
		ID:            "cs_orphan",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
	}, nil)

	service, dbMock, cleanup := newService(t, checkout, new(MockSigner))
	defer cleanup()

	dbMock.ExpectQuery("UPDATE orders").
		WillReturnRows(sqlmock.NewRows(orderColumns()))

	output, err := service.Execute(context.Background(), &Input{SessionID: "cs_orphan"})

	require.Error(t, err)
	assert.Nil(t, output)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeOrderNotFound, stdErr.Code)
}

// Unknown products resolve to zero links and still succeed.
func TestService_Execute_UnknownProduct(t *testing.T) {
	checkout := new(MockCheckoutClient)
	checkout.On("GetSession", "cs_other").Return(&stripe.CheckoutSession{
		ID:            "cs_other",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
	}, nil)

	signer := new(MockSigner)
	service, dbMock, cleanup := newService(t, checkout, signer)
	defer cleanup()

	dbMock.ExpectQuery("UPDATE orders").
		WillReturnRows(sqlmock.NewRows(orderColumns()).AddRow(
			"order-2", "buyer@example.com", "Mystery Product", 500, "usd",
			"completed", "cs_other", "2026-09-27T00:00:00Z",
			"2026-08-28T00:00:00Z", "2026-08-28T00:00:00Z",
		))

	output, err := service.Execute(context.Background(), &Input{SessionID: "cs_other"})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Empty(t, output.DownloadURLs)
	signer.AssertNotCalled(t, "SignedDownloadURL", mock.Anything, mock.Anything)
}

// Re-verification re-updates the order and re-issues links.
func TestService_Execute_NoIdempotencyGuard(t *testing.T) {
	checkout := new(MockCheckoutClient)
	checkout.On("GetSession", "cs_repeat").Return(&stripe.CheckoutSession{
		ID:            "cs_repeat",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
	}, nil).Twice()

	signer := new(MockSigner)
	signer.On("SignedDownloadURL", mock.Anything, "digital-products/ivys-ebook.pdf").
		Return("https://bucket.s3.amazonaws.com/signed", nil).Twice()

	service, dbMock, cleanup := newService(t, checkout, signer)
	defer cleanup()

	for i := 0; i < 2; i++ {
		dbMock.ExpectQuery("UPDATE orders").
			WillReturnRows(sqlmock.NewRows(orderColumns()).AddRow(
				"order-3", "buyer@example.com", "Ivy's Ebook", 1999, "usd",
				"completed", "cs_repeat", "2026-09-27T00:00:00Z",
				"2026-08-28T00:00:00Z", "2026-08-28T00:00:00Z",
			))
	}

	for i := 0; i < 2; i++ {
		output, err := service.Execute(context.Background(), &Input{SessionID: "cs_repeat"})
		require.NoError(t, err)
		assert.Len(t, output.DownloadURLs, 1)
	}

	assert.NoError(t, dbMock.ExpectationsWereMet())
	checkout.AssertExpectations(t)
	signer.AssertExpectations(t)
}

func TestService_Execute_MissingSessionID(t *testing.T) {
	service, _, cleanup := newService(t, new(MockCheckoutClient), new(MockSigner))
	defer cleanup()

	_, err := service.Execute(context.Background(), &Input{})

	require.Error(t, err)
	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidationFailed, stdErr.Code)
}

func TestService_Execute_SigningFailureSkipsLink(t *testing.T) {
	checkout := new(MockCheckoutClient)
	checkout.On("GetSession", "cs_sign_fail").Return(&stripe.CheckoutSession{
		ID:            "cs_sign_fail",
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
	}, nil)

	signer := new(MockSigner)
	signer.On("SignedDownloadURL", mock.Anything, mock.Anything).
		Return("", fmt.Errorf("presign failed"))

	service, dbMock, cleanup := newService(t, checkout, signer)
	defer cleanup()

	dbMock.ExpectQuery("UPDATE orders").
		WillReturnRows(sqlmock.NewRows(orderColumns()).AddRow(
			"order-4", "buyer@example.com", "Ivy's Ebook", 1999, "usd",
			"completed", "cs_sign_fail", "2026-09-27T00:00:00Z",
			"2026-08-28T00:00:00Z", "2026-08-28T00:00:00Z",
		))

	output, err := service.Execute(context.Background(), &Input{SessionID: "cs_sign_fail"})

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Empty(t, output.DownloadURLs)
}
