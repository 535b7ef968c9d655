// internal/handlers/booking/send-appointment-notification/config.go
package sendappointmentnotification

import "therapy-paws/internal/common/config"

type Config struct {
	AdminEmail string
	FromEmail  string
	FromName   string
	SiteName   string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		AdminEmail: cfg.Notifications.AdminEmail,
		FromEmail:  cfg.SendGrid.NotificationsEmail,
		FromName:   cfg.SendGrid.NotificationsName,
		SiteName:   cfg.Notifications.SiteName,
	}
}
