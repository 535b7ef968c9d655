// internal/handlers/subscribers/subscribe/models.go
package subscribe

import "therapy-paws/internal/models"

type Input struct {
	Email       string                        `json:"email"`
	Name        string                        `json:"name,omitempty"`
	Preferences *models.SubscriberPreferences `json:"preferences,omitempty"`
}

type Output struct {
	Success          bool   `json:"success"`
	SubscriberID     string `json:"subscriberId"`
	ConfirmationSent bool   `json:"confirmationSent"`
}
