// internal/handlers/notifications/send-order-confirmation/models.go
package sendorderconfirmation

import "therapy-paws/internal/models"

type Input struct {
	OrderID      string                `json:"orderId"`
	DownloadURLs []models.DownloadLink `json:"downloadUrls"`
}

type Output struct {
	Success   bool `json:"success"`
	EmailSent bool `json:"emailSent"`
}
