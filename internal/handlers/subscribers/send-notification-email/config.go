// internal/handlers/subscribers/send-notification-email/config.go
package sendnotificationemail

import "therapy-paws/internal/common/config"

type Config struct {
	FromEmail string
	FromName  string
	SiteName  string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		FromEmail: cfg.SendGrid.HelloEmail,
		FromName:  cfg.SendGrid.HelloName,
		SiteName:  cfg.Notifications.SiteName,
	}
}
