// internal/handlers/contact/send-contact-notification/config.go
package sendcontactnotification

import "therapy-paws/internal/common/config"

type Config struct {
	AdminEmail   string
	FromEmail    string // notifications sender for admin mail
	FromName     string
	HelloEmail   string // customer-facing sender
	HelloName    string
	SiteName     string
	ContactPhone string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		AdminEmail:   cfg.Notifications.AdminEmail,
		FromEmail:    cfg.SendGrid.NotificationsEmail,
		FromName:     cfg.SendGrid.NotificationsName,
		HelloEmail:   cfg.SendGrid.HelloEmail,
		HelloName:    cfg.SendGrid.HelloName,
		SiteName:     cfg.Notifications.SiteName,
		ContactPhone: cfg.Notifications.ContactPhone,
	}
}
