// internal/models/appointment.go
package models

// Appointment is one visit booking request. Rows are insert-only.
type Appointment struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	BusinessName      string             `json:"businessName"`
	ContactNumber     string             `json:"contactNumber"`
	Location          string             `json:"location"`
	AppointmentDate   string             `json:"appointmentDate"` // yyyy-mm-dd
	AppointmentTime   string             `json:"appointmentTime"` // HH:MM:SS, 24h
	Notes             string             `json:"notes,omitempty"`
	StructuredAddress *StructuredAddress `json:"structuredAddress,omitempty"`
	CreatedAt         string             `json:"createdAt"`
}

// AppointmentTimeSlots are the bookable visit times as shown to customers.
// Stored values use the 24-hour form in AppointmentTimeMapping.
var AppointmentTimeSlots = []string{
	"10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
}

var AppointmentTimeMapping = map[string]string{
	"10:00 AM": "10:00:00",
	"11:00 AM": "11:00:00",
	"12:00 PM": "12:00:00",
	"1:00 PM":  "13:00:00",
	"2:00 PM":  "14:00:00",
	"3:00 PM":  "15:00:00",
	"4:00 PM":  "16:00:00",
}
