// internal/models/order.go
package models

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// Order is one digital product purchase, keyed to its checkout session.
// Status moves pending -> completed on payment verification.
type Order struct {
	ID                 string `json:"id"`
	CustomerEmail      string `json:"customerEmail"`
	ProductName        string `json:"productName"`
	Amount             int64  `json:"amount"` // minor currency units
	Currency           string `json:"currency"`
	Status             string `json:"status"`
	StripeSessionID    string `json:"stripeSessionId"`
	DownloadExpiresAt  string `json:"downloadExpiresAt,omitempty"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

// DownloadLink pairs a display filename with its signed URL.
type DownloadLink struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
