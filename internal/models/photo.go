// internal/models/photo.go
package models

const PhotoStatusPending = "pending"

// PhotoSubmission is a visitor-submitted gallery entry awaiting review.
type PhotoSubmission struct {
	ID               string   `json:"id"`
	PhotoURLs        []string `json:"photoUrls"`
	EventDate        string   `json:"eventDate"`
	Story            string   `json:"story,omitempty"`
	SubmittedByName  string   `json:"submittedByName,omitempty"`
	SubmittedByEmail string   `json:"submittedByEmail,omitempty"`
	Status           string   `json:"status"`
	CreatedAt        string   `json:"createdAt"`
}
