package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so wrapped errors with a
// custom message still match the sentinel values below.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrValidation          = NewDomainError("VALIDATION_ERROR", "Validation failed")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrStockSourceMismatch = NewDomainError("STOCK_SOURCE_MISMATCH", "Record belongs to a different stock source")
)

// NotFound returns a NOT_FOUND error with a resource specific message
func NotFound(message string) *DomainError {
	return NewDomainError(ErrNotFound.Code, message)
}

// Validation returns a VALIDATION_ERROR with the given message
func Validation(message string) *DomainError {
	return NewDomainError(ErrValidation.Code, message)
}

// InsufficientStock returns an INSUFFICIENT_STOCK error with the given message
func InsufficientStock(message string) *DomainError {
	return NewDomainError(ErrInsufficientStock.Code, message)
}

// Forbidden returns a FORBIDDEN error with the given message
func Forbidden(message string) *DomainError {
	return NewDomainError(ErrForbidden.Code, message)
}
