// internal/handlers/payments/create-payment/validation.go
package createpayment

import (
	"strings"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/validation"
)

func validateInput(input *Input, cfg *Config) error {
	if strings.TrimSpace(input.ProductName) == "" {
		return errors.NewValidationFailedError("productName is required")
	}
	if input.Amount < cfg.MinAmount || input.Amount > cfg.MaxAmount {
		return errors.NewInvalidAmountError(input.Amount, cfg.MinAmount, cfg.MaxAmount)
	}
	if input.CustomerEmail != "" && !validation.ValidateEmail(input.CustomerEmail) {
		return errors.NewValidationFailedError("customerEmail is not a valid email address")
	}
	return nil
}
