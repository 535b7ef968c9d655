// internal/handlers/payments/verify-payment/service.go
package verifypayment

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v74"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/payments"
	"therapy-paws/internal/common/storage"
	"therapy-paws/internal/models"
	"therapy-paws/pkg/catalog"
)

type Service struct {
	config   *Config
	logger   logger.Logger
	checkout payments.CheckoutClient
	db       *sql.DB
	signer   storage.URLSigner
	catalog  *catalog.ProductCatalog
}

func NewService(config *Config, checkout payments.CheckoutClient, db *sql.DB,
	signer storage.URLSigner, cat *catalog.ProductCatalog, log logger.Logger) *Service {
	return &Service{
		config:   config,
		logger:   log,
		checkout: checkout,
		db:       db,
		signer:   signer,
		catalog:  cat,
	}
}

// Execute checks the session's payment status at the provider and, if paid,
// completes the matching order and issues signed download links. There is
// no idempotency guard: a repeat call for the same session re-updates the
// order and re-issues fresh links.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.SessionID) == "" {
		return nil, errors.NewValidationFailedError("sessionId is required")
	}

	session, err := s.checkout.GetSession(input.SessionID)
	if err != nil {
		return nil, errors.NewPaymentProviderError(err)
	}

	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil, errors.NewPaymentIncompleteError(input.SessionID, string(session.PaymentStatus))
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.config.DownloadWindow).Format(time.RFC3339)
	updatedAt := now.Format(time.RFC3339)

	var order models.Order
	err = s.db.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $1, download_expires_at = $2, updated_at = $3
		WHERE stripe_session_id = $4
		RETURNING id, customer_email, product_name, amount, currency,
			status, stripe_session_id, download_expires_at, created_at, updated_at`,
		models.OrderStatusCompleted,
		expiresAt,
		updatedAt,
		input.SessionID,
	).Scan(
		&order.ID,
		&order.CustomerEmail,
		&order.ProductName,
		&order.Amount,
		&order.Currency,
		&order.Status,
		&order.StripeSessionID,
		&order.DownloadExpiresAt,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewOrderNotFoundError(input.SessionID)
	}
	if err != nil {
		return nil, errors.NewDatabaseUpdateFailedError(err)
	}

	// Unknown products yield zero links, not an error.
	files := s.catalog.FilesFor(order.ProductName)
	downloadURLs := make([]models.DownloadLink, 0, len(files))
	for _, f := range files {
		url, err := s.signer.SignedDownloadURL(ctx, f.Key)
		if err != nil {
			s.logger.Error("failed to sign download url", map[string]interface{}{
				"orderId": order.ID,
				"key":     f.Key,
				"error":   err.Error(),
			})
			continue
		}
		downloadURLs = append(downloadURLs, models.DownloadLink{
			Filename: f.Filename,
			URL:      url,
		})
	}

	s.logger.Info("payment verified and order completed", map[string]interface{}{
		"orderId":      order.ID,
		"sessionId":    input.SessionID,
		"downloadUrls": len(downloadURLs),
	})

	return &Output{
		Success:      true,
		Order:        &order,
		DownloadURLs: downloadURLs,
	}, nil
}
