// internal/handlers/newsletter/send-newsletter/config.go
package sendnewsletter

import "therapy-paws/internal/common/config"

type Config struct {
	FromEmail      string
	FromName       string
	SiteName       string
	UnsubscribeURL string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		FromEmail:      cfg.SendGrid.HelloEmail,
		FromName:       cfg.SendGrid.HelloName,
		SiteName:       cfg.Notifications.SiteName,
		UnsubscribeURL: cfg.Notifications.UnsubscribeURL,
	}
}
