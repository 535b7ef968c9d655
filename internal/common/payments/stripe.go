// Package payments wraps the Stripe API client used for checkout sessions.
package payments

import (
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"therapy-paws/internal/common/config"
)

// CheckoutClient is the slice of the Stripe API the handlers use. Session
// creation and retrieval only; webhooks are not part of this service.
type CheckoutClient interface {
	CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetSession(sessionID string) (*stripe.CheckoutSession, error)
}

type Client struct {
	api      *client.API
	currency string
}

func NewClient(cfg config.StripeConfig) *Client {
	var api client.API
	api.Init(cfg.SecretKey, nil)

	return &Client{
		api:      &api,
		currency: cfg.Currency,
	}
}

// Currency returns the configured settlement currency.
func (c *Client) Currency() string {
	return c.currency
}

func (c *Client) CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.api.CheckoutSessions.New(params)
}

func (c *Client) GetSession(sessionID string) (*stripe.CheckoutSession, error) {
	return c.api.CheckoutSessions.Get(sessionID, nil)
}
