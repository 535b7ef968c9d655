// internal/handlers/booking/book-appointment/models.go
package bookappointment

import "therapy-paws/internal/models"

type Input struct {
	Name              string                    `json:"name"`
	BusinessName      string                    `json:"businessName"`
	ContactNumber     string                    `json:"contactNumber"`
	Location          string                    `json:"location"`
	AppointmentDate   string                    `json:"appointmentDate"` // yyyy-mm-dd
	AppointmentTime   string                    `json:"appointmentTime"` // display slot, e.g. "10:00 AM"
	Notes             string                    `json:"notes,omitempty"`
	StructuredAddress *models.StructuredAddress `json:"structuredAddress,omitempty"`
}

type Output struct {
	Success               bool   `json:"success"`
	AppointmentID         string `json:"appointmentId"`
	AdminNotificationSent bool   `json:"adminNotificationSent"`
}
