// internal/handlers/notifications/send-donation-confirmation/config.go
package senddonationconfirmation

import "therapy-paws/internal/common/config"

type Config struct {
	NotificationsEmail string
	NotificationsName  string
	HelloEmail         string
	HelloName          string
	AdminEmail         string
	SiteName           string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		NotificationsEmail: cfg.SendGrid.NotificationsEmail,
		NotificationsName:  cfg.SendGrid.NotificationsName,
		HelloEmail:         cfg.SendGrid.HelloEmail,
		HelloName:          cfg.SendGrid.HelloName,
		AdminEmail:         cfg.Notifications.AdminEmail,
		SiteName:           cfg.Notifications.SiteName,
	}
}
