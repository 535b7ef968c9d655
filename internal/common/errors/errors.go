// Package errors provides standardized error handling across request handlers.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidAmount    ErrorCode = "INVALID_AMOUNT"
	ErrCodeMissingOrigin    ErrorCode = "MISSING_ORIGIN"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeDatabaseInsertFailed     ErrorCode = "DATABASE_INSERT_FAILED"
	ErrCodeDatabaseUpdateFailed     ErrorCode = "DATABASE_UPDATE_FAILED"
	ErrCodeDatabaseQueryFailed      ErrorCode = "DATABASE_QUERY_FAILED"
	ErrCodeDuplicateSubscriber      ErrorCode = "DUPLICATE_SUBSCRIBER"

	ErrCodePaymentProviderError ErrorCode = "PAYMENT_PROVIDER_ERROR"
	ErrCodePaymentIncomplete    ErrorCode = "PAYMENT_INCOMPLETE"
	ErrCodeOrderNotFound        ErrorCode = "ORDER_NOT_FOUND"

	ErrCodeAppointmentNotFound ErrorCode = "APPOINTMENT_NOT_FOUND"
	ErrCodeNewsletterNotFound  ErrorCode = "NEWSLETTER_NOT_FOUND"

	ErrCodeEmailDeliveryFailed   ErrorCode = "EMAIL_DELIVERY_FAILED"
	ErrCodeUnknownEmailType      ErrorCode = "UNKNOWN_EMAIL_TYPE"
	ErrCodeNoVerifiedSubscribers ErrorCode = "NO_VERIFIED_SUBSCRIBERS"

	ErrCodeAddressLookupFailed  ErrorCode = "ADDRESS_LOOKUP_FAILED"
	ErrCodeSignedURLIssueFailed ErrorCode = "SIGNED_URL_ISSUE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewValidationFailedError creates a non-retryable validation error.
// Details are safe to surface to the caller verbatim.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidAmountError creates a non-retryable amount bounds error.
func NewInvalidAmountError(amount, min, max int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidAmount,
		Message:   "Amount is outside the accepted range",
		Details:   fmt.Sprintf("amount: %d, accepted range: [%d, %d]", amount, min, max),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingOriginError creates a non-retryable error for requests that
// carry no Origin header to build redirect URLs from.
func NewMissingOriginError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingOrigin,
		Message:   "Origin header is required",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a retryable database insert error.
func NewDatabaseInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFailed,
		Message:   "Database insert operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseUpdateFailedError creates a retryable database update error.
func NewDatabaseUpdateFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseUpdateFailed,
		Message:   "Database update operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseQueryFailedError creates a retryable database query error.
func NewDatabaseQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseQueryFailed,
		Message:   "Database query failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateSubscriberError creates a non-retryable duplicate signup error.
func NewDuplicateSubscriberError(email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateSubscriber,
		Message:   "Email address is already subscribed",
		Details:   fmt.Sprintf("email: %s", email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPaymentProviderError creates a retryable payment provider error.
// Raw provider error text stays server-side; callers get a generic message.
func NewPaymentProviderError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePaymentProviderError,
		Message:   "Payment provider request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPaymentIncompleteError creates a non-retryable unpaid session error.
func NewPaymentIncompleteError(sessionID, status string) *StandardError {
	return &StandardError{
		Code:      ErrCodePaymentIncomplete,
		Message:   "Payment not completed",
		Details:   fmt.Sprintf("sessionId: %s, paymentStatus: %s", sessionID, status),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewOrderNotFoundError creates a non-retryable missing order error.
func NewOrderNotFoundError(ref string) *StandardError {
	return &StandardError{
		Code:      ErrCodeOrderNotFound,
		Message:   "Order not found",
		Details:   fmt.Sprintf("ref: %s", ref),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAppointmentNotFoundError creates a non-retryable missing appointment error.
func NewAppointmentNotFoundError(appointmentID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAppointmentNotFound,
		Message:   "Appointment not found",
		Details:   fmt.Sprintf("appointmentId: %s", appointmentID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNewsletterNotFoundError creates a non-retryable missing newsletter error.
func NewNewsletterNotFoundError(newsletterID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNewsletterNotFound,
		Message:   "Newsletter not found",
		Details:   fmt.Sprintf("newsletterId: %s", newsletterID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailDeliveryFailedError creates a retryable email delivery error.
func NewEmailDeliveryFailedError(kind string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailDeliveryFailed,
		Message:   "Email delivery failed",
		Details:   fmt.Sprintf("kind: %s, error: %s", kind, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownEmailTypeError creates a non-retryable template lookup error.
func NewUnknownEmailTypeError(emailType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownEmailType,
		Message:   "Unknown email type",
		Details:   fmt.Sprintf("type: %s", emailType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoVerifiedSubscribersError creates a non-retryable empty audience error.
func NewNoVerifiedSubscribersError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNoVerifiedSubscribers,
		Message:   "No verified subscribers found",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAddressLookupFailedError creates a retryable geocoding provider error.
func NewAddressLookupFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAddressLookupFailed,
		Message:   "Address lookup provider error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSignedURLIssueFailedError creates a retryable storage signing error.
func NewSignedURLIssueFailedError(key string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSignedURLIssueFailed,
		Message:   "Failed to issue signed download URL",
		Details:   fmt.Sprintf("key: %s, error: %s", key, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewExternalServiceError creates a generic retryable external service error.
func NewExternalServiceError(service string, err error) *StandardError {
	return &StandardError{
		Code:      "EXTERNAL_SERVICE_ERROR",
		Message:   fmt.Sprintf("External service '%s' error", service),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// httpStatusMapping maps internal error codes to HTTP response status.
var httpStatusMapping = map[ErrorCode]int{
	ErrCodeValidationFailed:         http.StatusBadRequest,
	ErrCodeInvalidAmount:            http.StatusBadRequest,
	ErrCodeMissingOrigin:            http.StatusBadRequest,
	ErrCodeUnknownEmailType:         http.StatusBadRequest,
	ErrCodeNoVerifiedSubscribers:    http.StatusBadRequest,
	ErrCodeDuplicateSubscriber:      http.StatusConflict,
	ErrCodeOrderNotFound:            http.StatusNotFound,
	ErrCodeAppointmentNotFound:      http.StatusNotFound,
	ErrCodeNewsletterNotFound:       http.StatusNotFound,
	ErrCodePaymentIncomplete:        http.StatusPaymentRequired,
	ErrCodePaymentProviderError:     http.StatusBadGateway,
	ErrCodeAddressLookupFailed:      http.StatusBadGateway,
	ErrCodeDatabaseConnectionFailed: http.StatusInternalServerError,
	ErrCodeDatabaseInsertFailed:     http.StatusInternalServerError,
	ErrCodeDatabaseUpdateFailed:     http.StatusInternalServerError,
	ErrCodeDatabaseQueryFailed:      http.StatusInternalServerError,
	ErrCodeEmailDeliveryFailed:      http.StatusInternalServerError,
	ErrCodeSignedURLIssueFailed:     http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for an error code, defaulting to 500.
func HTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// SafeForClient reports whether the error's details may be surfaced to the
// caller. Only client-addressable errors qualify; infrastructure details
// never leave the server.
func SafeForClient(code ErrorCode) bool {
	switch code {
	case ErrCodeValidationFailed,
		ErrCodeInvalidAmount,
		ErrCodeMissingOrigin,
		ErrCodeDuplicateSubscriber,
		ErrCodeUnknownEmailType,
		ErrCodeNoVerifiedSubscribers,
		ErrCodeOrderNotFound,
		ErrCodeAppointmentNotFound,
		ErrCodeNewsletterNotFound,
		ErrCodePaymentIncomplete:
		return true
	default:
		return false
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// GetErrorCategory returns the coarse category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "MISSING"):
		return "VALIDATION"
	case strings.Contains(codeStr, "DATABASE") || strings.Contains(codeStr, "DUPLICATE"):
		return "DATABASE"
	case strings.Contains(codeStr, "PAYMENT") || strings.Contains(codeStr, "ORDER"):
		return "PAYMENT"
	case strings.Contains(codeStr, "EMAIL") || strings.Contains(codeStr, "SUBSCRIBER") || strings.Contains(codeStr, "NEWSLETTER"):
		return "EMAIL"
	case strings.Contains(codeStr, "ADDRESS"):
		return "ADDRESS"
	case strings.Contains(codeStr, "SIGNED_URL"):
		return "STORAGE"
	default:
		return "OTHER"
	}
}

// IsRetryable reports whether an arbitrary error is a retryable StandardError.
func IsRetryable(err error) bool {
	if se, ok := err.(*StandardError); ok {
		return se.Retryable
	}
	return false
}
