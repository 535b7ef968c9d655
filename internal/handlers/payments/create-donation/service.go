// internal/handlers/payments/create-donation/service.go
package createdonation

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v74"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/logger"
	"therapy-paws/internal/common/metrics"
	"therapy-paws/internal/common/payments"
)

type Service struct {
	config   *Config
	logger   logger.Logger
	checkout payments.CheckoutClient
}

func NewService(config *Config, checkout payments.CheckoutClient, log logger.Logger) *Service {
	return &Service{
		config:   config,
		logger:   log,
		checkout: checkout,
	}
}

// Execute creates a one-time donation checkout session. Amount bounds are
// checked before any provider call is made.
func (s *Service) Execute(ctx context.Context, input *Input, origin string) (*Output, error) {
	if input.Amount < s.config.MinAmount || input.Amount > s.config.MaxAmount {
		return nil, errors.NewInvalidAmountError(input.Amount, s.config.MinAmount, s.config.MaxAmount)
	}
	if origin == "" {
		return nil, errors.NewMissingOriginError()
	}

	s.logger.Info("creating donation session", map[string]interface{}{
		"amount": input.Amount,
	})

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(s.config.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Donation to Ivy's Therapy Mission"),
						Description: stripe.String("Support therapy visits and bring comfort to those who need it most"),
					},
					UnitAmount: stripe.Int64(input.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(origin + "/donate?success=true&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(origin + "/donate?canceled=true"),
	}
	params.AddMetadata("type", "donation")
	params.AddMetadata("amount", fmt.Sprintf("%d", input.Amount))

	session, err := s.checkout.CreateSession(params)
	if err != nil {
		return nil, errors.NewPaymentProviderError(err)
	}

	metrics.CheckoutSessionsCreated.WithLabelValues("donation").Inc()
	s.logger.Info("donation session created", map[string]interface{}{
		"sessionId": session.ID,
	})

	return &Output{URL: session.URL}, nil
}
