// Package errors defines the application error taxonomy shared by the usecase
// and delivery layers.
package errors

import (
	"fmt"
	"net/http"

	"musika/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors carrying the same business error code, so a copy
// produced by WithDetails still compares equal to its predefined original.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WithDetails adds detailed error information.
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
	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderEmpty = NewBaseError(
		http.StatusBadRequest,
		"ORDER_EMPTY",
		"Order must contain at least one item",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATION_FAILED",
		"Failed to create order",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Status transition not allowed",
		"",
	)

	// Payment-related errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Payment not found",
		"",
	)

	ErrInvalidPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_METHOD",
		"Unsupported payment method",
		"",
	)

	ErrInvalidPhoneNumber = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE_NUMBER",
		"Phone number must be in the format 263XXXXXXXXX",
		"",
	)

	ErrDuplicateTransaction = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_TRANSACTION",
		"Transaction reference already exists",
		"",
	)

	// Search-related errors
	ErrQueryTooShort = NewBaseError(
		http.StatusBadRequest,
		"QUERY_TOO_SHORT",
		"Search query must be at least 2 characters",
		"",
	)

	ErrInvalidSearchType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SEARCH_TYPE",
		"Search type must be 'product' or 'blog'",
		"",
	)

	// Analytics-related errors
	ErrAnalyticsNotFound = NewBaseError(
		http.StatusNotFound,
		"ANALYTICS_NOT_FOUND",
		"Analytics record not found",
		"",
	)

	// Multimedia-related errors
	ErrMultimediaNotFound = NewBaseError(
		http.StatusNotFound,
		"MULTIMEDIA_NOT_FOUND",
		"Multimedia record not found",
		"",
	)

	ErrInvalidFileType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILE_TYPE",
		"File type must be one of image, audio, video, document",
		"",
	)

	// Assistant-related errors
	ErrAssistantUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"ASSISTANT_UNAVAILABLE",
		"AI assistant is unavailable",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
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
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the
// AppError interface.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// GatewayError carries an upstream payment-gateway failure. The upstream
// status code and message are surfaced verbatim to the caller; there is no
// retry or compensating action.
type GatewayError struct {
	StatusCode int
	Upstream   string
}

// NewGatewayError creates a gateway error from an upstream response.
func NewGatewayError(statusCode int, upstream string) *GatewayError {
	return &GatewayError{StatusCode: statusCode, Upstream: upstream}
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway returned %d: %s", e.StatusCode, e.Upstream)
}

// HTTPCode passes the upstream status through when it is a valid HTTP error
// code, defaulting to 502 for transport-level failures.
func (e *GatewayError) HTTPCode() int {
	if e.StatusCode >= 400 && e.StatusCode < 600 {
		return e.StatusCode
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code.
func (e *GatewayError) ErrorCode() string {
	return "PAYMENT_GATEWAY_FAILED"
}

// Message returns the user-friendly error message.
func (e *GatewayError) Message() string {
	return "Payment initiation failed"
}

// Details returns the upstream error payload.
func (e *GatewayError) Details() string {
	return e.Upstream
}
