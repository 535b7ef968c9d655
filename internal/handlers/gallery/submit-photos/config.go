// internal/handlers/gallery/submit-photos/config.go
package submitphotos

import "therapy-paws/internal/common/config"

type Config struct {
	FromEmail  string
	FromName   string
	AdminEmail string
	SiteName   string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		FromEmail:  cfg.SendGrid.NotificationsEmail,
		FromName:   cfg.SendGrid.NotificationsName,
		AdminEmail: cfg.Notifications.AdminEmail,
		SiteName:   cfg.Notifications.SiteName,
	}
}
