package errors

import (
	"net/http"

	"tapadmin/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Merchant-related errors
	ErrMerchantNotFound = NewBaseError(
		http.StatusNotFound,
		"MERCHANT_NOT_FOUND",
		"Merchant not found",
		"",
	)

	ErrCoffeeProgramExists = NewBaseError(
		http.StatusConflict,
		"COFFEE_PROGRAM_EXISTS",
		"This merchant already has a coffee program",
		"",
	)

	ErrCashbackProgramExists = NewBaseError(
		http.StatusConflict,
		"CASHBACK_PROGRAM_EXISTS",
		"This merchant already has a cashback program",
		"",
	)

	ErrIntroductoryRewardLimit = NewBaseError(
		http.StatusConflict,
		"INTRODUCTORY_REWARD_LIMIT",
		"Merchants can hold at most 3 introductory rewards",
		"",
	)

	// Customer-related errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	// Reward-related errors
	ErrRewardNotFound = NewBaseError(
		http.StatusNotFound,
		"REWARD_NOT_FOUND",
		"Reward not found",
		"",
	)

	ErrInvalidCollectionPath = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COLLECTION_PATH",
		"Reward collection path is not addressable",
		"",
	)

	ErrInvalidPIN = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PIN",
		"Redemption PIN must be exactly 4 digits",
		"",
	)

	// Membership-related errors
	ErrTierNotFound = NewBaseError(
		http.StatusNotFound,
		"TIER_NOT_FOUND",
		"Membership tier not found",
		"",
	)

	ErrTierImmutable = NewBaseError(
		http.StatusConflict,
		"TIER_IMMUTABLE",
		"The Bronze tier is the default baseline and cannot be modified",
		"",
	)

	// Job-related errors
	ErrJobNotFound = NewBaseError(
		http.StatusNotFound,
		"JOB_NOT_FOUND",
		"Scheduled job not found",
		"",
	)

	ErrInvalidSchedule = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SCHEDULE",
		"Job schedule is not a valid cron expression",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Permission denied",
		"",
	)
)

// NewValidationError builds a field-specific validation failure so each
// missing or malformed field can surface its own message.
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", message, "")
}

// NewDatabaseExecuteError wraps an unexpected datastore failure with stack
// context while presenting a stable business code.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(
		ErrInternalError.WithDetails(err.Error()),
		message,
	)
}
