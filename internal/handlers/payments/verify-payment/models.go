// internal/handlers/payments/verify-payment/models.go
package verifypayment

import "therapy-paws/internal/models"

type Input struct {
	SessionID string `json:"sessionId"`
}

type Output struct {
	Success      bool                  `json:"success"`
	Order        *models.Order         `json:"order"`
	DownloadURLs []models.DownloadLink `json:"downloadUrls"`
}
