package dto

import "net/http"

// Error codes carried in the response envelope. Domain errors keep their own
// code; the ones below are produced by the HTTP layer itself.
const (
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeAlreadyExists     = "ALREADY_EXISTS"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodePayloadTooLarge   = "PAYLOAD_TOO_LARGE"
	ErrCodeDuplicateRequest  = "DUPLICATE_REQUEST"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal: http.StatusInternalServerError,

	// Input -> 400
	ErrCodeValidation:             http.StatusBadRequest,
	ErrCodeInvalidInput:           http.StatusBadRequest,
	"INVALID_NAME":                http.StatusBadRequest,
	"INVALID_EMAIL":               http.StatusBadRequest,
	"INVALID_PASSWORD":            http.StatusBadRequest,
	"CANNOT_DELETE_SELF":          http.StatusBadRequest,
	"CANNOT_DELETE_PRIMARY_ADMIN": http.StatusBadRequest,

	// Auth
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,

	// Resources
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeAlreadyExists:    http.StatusConflict,
	"STOCK_SOURCE_MISMATCH": http.StatusConflict,
	ErrCodeDuplicateRequest: http.StatusConflict,

	// Ledger rules -> 422
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,
	"INVALID_STATE":          http.StatusUnprocessableEntity,

	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	"STORAGE_DISABLED":     http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status for code, 500 when unknown
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
