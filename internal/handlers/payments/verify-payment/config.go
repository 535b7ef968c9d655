// internal/handlers/payments/verify-payment/config.go
package verifypayment

import (
	"time"

	"therapy-paws/internal/common/config"
)

type Config struct {
	// Window during which completed orders may download their files.
	DownloadWindow time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		DownloadWindow: time.Duration(cfg.Storage.DownloadWindowDays) * 24 * time.Hour,
	}
}
