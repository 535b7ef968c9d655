// internal/models/contact.go
package models

type ContactSubmission struct {
	ID                string             `json:"id"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone,omitempty"`
	Organization      string             `json:"organization,omitempty"`
	Address           string             `json:"address,omitempty"`
	Subject           string             `json:"subject"`
	Message           string             `json:"message"`
	StructuredAddress *StructuredAddress `json:"structuredAddress,omitempty"`
	Coordinates       string             `json:"coordinates,omitempty"`
	CreatedAt         string             `json:"createdAt"`
}
