// internal/handlers/notifications/send-donation-confirmation/models.go
package senddonationconfirmation

type Input struct {
	DonorEmail string `json:"donorEmail"`
	// Amount in minor currency units.
	Amount    int64  `json:"amount"`
	DonorName string `json:"donorName,omitempty"`
}

type Output struct {
	Success                  bool `json:"success"`
	AdminNotificationSent    bool `json:"adminNotificationSent"`
	CustomerConfirmationSent bool `json:"customerConfirmationSent"`
}
