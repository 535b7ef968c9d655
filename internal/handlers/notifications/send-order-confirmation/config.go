// internal/handlers/notifications/send-order-confirmation/config.go
package sendorderconfirmation

import "therapy-paws/internal/common/config"

type Config struct {
	FromEmail string
	FromName  string
	SiteName  string
	// The order's download window, quoted in the email body. Not the
	// presigned URL TTL: re-verifying the session issues fresh links for
	// the whole window.
	DownloadWindowDays int
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		FromEmail:          cfg.SendGrid.OrdersEmail,
		FromName:           cfg.SendGrid.OrdersName,
		SiteName:           cfg.Notifications.SiteName,
		DownloadWindowDays: cfg.Storage.DownloadWindowDays,
	}
}
