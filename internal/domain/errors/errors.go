// Package errors defines the application error model: a single AppError
// interface with a kind discriminator (business error code), an HTTP status,
// a user-facing message and an optional structured payload. The boundary
// layer matches on the code; nothing dispatches on concrete error types.
package errors

import (
	"net/http"
	"time"

	"vms/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int            // HTTP status code
	ErrorCode() string        // Business error code
	Message() string          // User-friendly error message
	Details() string          // Detailed error information (optional)
	Payload() map[string]any  // Structured payload for the client (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	payload   map[string]any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches errors by kind rather than identity, so a copy carrying extra
// details or a payload still matches its sentinel.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode && other.message == e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Payload returns the structured payload attached to the error, if any
func (e *BaseError) Payload() map[string]any {
	return e.payload
}

// WithDetails returns a copy of the error with detailed information attached
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		payload:   e.payload,
	}
}

// WithPayload returns a copy of the error with a structured payload attached
func (e *BaseError) WithPayload(payload map[string]any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   e.details,
		payload:   payload,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_IN_USE",
		"Email already in use",
		"",
	)

	ErrPhoneInUse = NewBaseError(
		http.StatusBadRequest,
		"PHONE_IN_USE",
		"Phone number is already in use",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create user",
		"",
	)

	ErrSelfDeletion = NewBaseError(
		http.StatusForbidden,
		"SELF_DELETION",
		"You cannot delete your own account",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email, phone or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing error",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the strength requirements",
		"",
	)

	ErrOTPInvalid = NewBaseError(
		http.StatusBadRequest,
		"OTP_INVALID",
		"Invalid one time pass code",
		"",
	)

	ErrOTPExpired = NewBaseError(
		http.StatusBadRequest,
		"OTP_EXPIRED",
		"One time pass code expired",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You are not allowed to perform this action",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrCheckOutPayload = NewBaseError(
		http.StatusBadRequest,
		"CHECKOUT_PAYLOAD",
		"Check-out accepts only a status field with the value 'checked-out'",
		"",
	)

	// Visit-related errors
	ErrVisitNotFound = NewBaseError(
		http.StatusNotFound,
		"VISIT_NOT_FOUND",
		"Visit not found or is already deleted",
		"",
	)

	ErrAlreadyCheckedOut = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_CHECKED_OUT",
		"Visit is already checked out",
		"",
	)

	ErrInvalidPurpose = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PURPOSE",
		"Unknown visit purpose",
		"",
	)

	ErrHostRoleRequired = NewBaseError(
		http.StatusBadRequest,
		"HOST_ROLE_REQUIRED",
		"The selected user cannot receive visits",
		"",
	)

	// Schedule-related errors
	ErrScheduleNotFound = NewBaseError(
		http.StatusNotFound,
		"SCHEDULE_NOT_FOUND",
		"Availability window not found",
		"",
	)

	ErrScheduleOverlap = NewBaseError(
		http.StatusBadRequest,
		"SCHEDULE_OVERLAP",
		"The window overlaps an existing availability window for this host",
		"",
	)

	ErrScheduleWindowInvalid = NewBaseError(
		http.StatusBadRequest,
		"SCHEDULE_WINDOW_INVALID",
		"The window start must be before its end",
		"",
	)

	// Availability resolution rejections
	ErrNoScheduleSet = NewBaseError(
		http.StatusBadRequest,
		"NO_SCHEDULE",
		"No schedule set for the selected host",
		"",
	)

	ErrHostUnavailable = NewBaseError(
		http.StatusConflict,
		"HOST_UNAVAILABLE",
		"Host is unavailable at the requested time",
		"",
	)

	ErrNoFurtherAvailability = NewBaseError(
		http.StatusConflict,
		"HOST_UNAVAILABLE",
		"No further availability set for the selected host",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrSubscriptionInvalid = NewBaseError(
		http.StatusBadRequest,
		"SUBSCRIPTION_INVALID",
		"Subscription must carry an endpoint and both p256dh and auth keys",
		"",
	)
)

// NewHostUnavailableError builds the availability rejection carrying the
// next instant the host becomes available, so the client can offer a retry
// time.
func NewHostUnavailableError(availableAt time.Time) *BaseError {
	return ErrHostUnavailable.WithPayload(map[string]any{
		"kind":        "Unavailable",
		"availableAt": availableAt.Format(time.RFC3339),
	})
}

// NewDatabaseExecuteError wraps a low-level database failure as an internal
// application error, keeping the driver message in the details.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)
}
