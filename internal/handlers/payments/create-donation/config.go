// internal/handlers/payments/create-donation/config.go
package createdonation

import "therapy-paws/internal/common/config"

type Config struct {
	Currency  string
	MinAmount int64
	MaxAmount int64
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Currency:  cfg.Stripe.Currency,
		MinAmount: cfg.Stripe.MinAmount,
		MaxAmount: cfg.Stripe.MaxAmount,
	}
}
