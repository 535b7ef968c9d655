// internal/handlers/booking/send-appointment-notification/models.go
package sendappointmentnotification

type Input struct {
	AppointmentID            string `json:"appointmentId"`
	SendCustomerConfirmation bool   `json:"sendCustomerConfirmation,omitempty"`
}

type Output struct {
	Success                  bool `json:"success"`
	AdminNotificationSent    bool `json:"adminNotificationSent"`
	CustomerConfirmationSent bool `json:"customerConfirmationSent"`
}
