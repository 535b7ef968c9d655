// internal/handlers/subscribers/send-notification-email/models.go
package sendnotificationemail

const (
	TypeWelcome                = "welcome"
	TypeNewsletterConfirmation = "newsletter_confirmation"
)

type Input struct {
	Email string                 `json:"email"`
	Name  string                 `json:"name,omitempty"`
	Type  string                 `json:"type"`
	Data  map[string]interface{} `json:"data,omitempty"`
}

type Output struct {
	Success bool   `json:"success"`
	ID      string `json:"id"` // provider message id
}
