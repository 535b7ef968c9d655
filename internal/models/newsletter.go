// internal/models/newsletter.go
package models

const (
	NewsletterStatusDraft = "draft"
	NewsletterStatusSent  = "sent"
)

// Newsletter transitions draft -> sent exactly once; SentAt and SentToCount
// are set by the send run.
type Newsletter struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	SentAt      string `json:"sentAt,omitempty"`
	SentToCount int    `json:"sentToCount,omitempty"`
}

const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// NotificationLog is one per-recipient delivery record from a newsletter run.
type NotificationLog struct {
	ID               string `json:"id"`
	SubscriberEmail  string `json:"subscriberEmail"`
	NotificationType string `json:"notificationType"`
	Subject          string `json:"subject"`
	DeliveryStatus   string `json:"deliveryStatus"`
	MessageID        string `json:"messageId,omitempty"`
	ErrorMessage     string `json:"errorMessage,omitempty"`
	CreatedAt        string `json:"createdAt"`
}
