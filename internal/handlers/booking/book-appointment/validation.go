// internal/handlers/booking/book-appointment/validation.go
package bookappointment

import (
	"strings"
	"time"

	"therapy-paws/internal/common/errors"
	"therapy-paws/internal/common/validation"
	"therapy-paws/internal/models"
)

// validateInput applies the booking form rules. The returned string is the
// 24-hour storage form of the requested time slot.
func validateInput(input *Input, now time.Time) (string, error) {
	if len(strings.TrimSpace(input.Name)) < 2 {
		return "", errors.NewValidationFailedError("name must be at least 2 characters")
	}
	if len(strings.TrimSpace(input.BusinessName)) < 2 {
		return "", errors.NewValidationFailedError("businessName must be at least 2 characters")
	}
	if validation.CountDigits(input.ContactNumber) < 10 {
		return "", errors.NewValidationFailedError("contactNumber must contain at least 10 digits")
	}
	if len(strings.TrimSpace(input.Location)) < 5 {
		return "", errors.NewValidationFailedError("location must be at least 5 characters")
	}

	if !validation.ValidateDate(input.AppointmentDate) {
		return "", errors.NewValidationFailedError("appointmentDate must be in yyyy-mm-dd format")
	}
	date, err := time.Parse("2006-01-02", input.AppointmentDate)
	if err != nil {
		return "", errors.NewValidationFailedError("appointmentDate is not a valid date")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !date.After(today) {
		return "", errors.NewValidationFailedError("appointmentDate must be in the future")
	}

	stored, ok := models.AppointmentTimeMapping[input.AppointmentTime]
	if !ok {
		return "", errors.NewValidationFailedError(
			"appointmentTime must be one of: " + strings.Join(models.AppointmentTimeSlots, ", "))
	}

	return stored, nil
}
