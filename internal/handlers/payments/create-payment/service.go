// internal/handlers/payments/create-payment/service.go
package createpayment

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/metrics"
	"therapy-paws/internal/common/payments"
	"therapy-paws/internal/models"
)

type Service struct {
	config   *Config
	logger   logger.Logger
	checkout payments.CheckoutClient
	db       *sql.DB
}

func NewService(config *Config, checkout payments.CheckoutClient, db *sql.DB, log logger.Logger) *Service {
	return &Service{
		config:   config,
		logger:   log,
		checkout: checkout,
		db:       db,
	}
}

// Execute creates a checkout session for a digital product, then records a
// pending order keyed to the session. The session is created first; an
// order-insert failure is logged and the session URL still returned, which
// can leave a session without a matching order row.
func (s *Service) Execute(ctx context.Context, input *Input, origin string) (*Output, error) {
	if err := validateInput(input, s.config); err != nil {
		return nil, err
	}
	if origin == "" {
		return nil, errors.NewMissingOriginError()
	}

	s.logger.Info("creating payment session", map[string]interface{}{
		"productName": input.ProductName,
		"amount":      input.Amount,
	})

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(s.config.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(input.ProductName),
						Description: stripe.String("Digital download: " + input.ProductName),
					},
					UnitAmount: stripe.Int64(input.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(origin + "/shop?success=true&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(origin + "/shop?canceled=true"),
	}
	if input.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(input.CustomerEmail)
	}
	params.AddMetadata("type", "digital_product")
	params.AddMetadata("product_name", input.ProductName)

	session, err := s.checkout.CreateSession(params)
	if err != nil {
		return nil, errors.NewPaymentProviderError(err)
	}

	metrics.CheckoutSessionsCreated.WithLabelValues("digital_product").Inc()

	orderID := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO orders (
			id, customer_email, product_name, amount, currency,
			status, stripe_session_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		orderID,
		input.CustomerEmail,
		input.ProductName,
		input.Amount,
		s.config.Currency,
		models.OrderStatusPending,
		session.ID,
		now,
	)
	if err != nil {
		// Session already exists at the provider, so surface the URL anyway.
		s.logger.Error("order insert failed after session creation", map[string]interface{}{
			"sessionId":   session.ID,
			"productName": input.ProductName,
			"error":       err.Error(),
		})
	}

	s.logger.Info("payment session created", map[string]interface{}{
		"sessionId": session.ID,
		"orderId":   orderID,
	})

	return &Output{URL: session.URL}, nil
}
