// internal/handlers/contact/send-contact-notification/models.go
package sendcontactnotification

import "therapy-paws/internal/models"

type Input struct {
	FirstName         string                    `json:"firstName"`
	LastName          string                    `json:"lastName"`
	Email             string                    `json:"email"`
	Phone             string                    `json:"phone,omitempty"`
	Organization      string                    `json:"organization,omitempty"`
	Address           string                    `json:"address,omitempty"`
	Subject           string                    `json:"subject"`
	Message           string                    `json:"message"`
	StructuredAddress *models.StructuredAddress `json:"structured_address,omitempty"`
	Coordinates       string                    `json:"coordinates,omitempty"`
}

type Output struct {
	Success                  bool `json:"success"`
	AdminNotificationSent    bool `json:"adminNotificationSent"`
	CustomerConfirmationSent bool `json:"customerConfirmationSent"`
}
