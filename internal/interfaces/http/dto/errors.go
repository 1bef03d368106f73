package dto

import (
	"net/http"
	"strings"
)

// Error code constants, format: ERR_<CATEGORY>_<DESCRIPTION>
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeInvalidState is used when an operation is invalid for the current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeInsufficientStock is used when a sale exceeds available stock
	ErrCodeInsufficientStock = "ERR_INSUFFICIENT_STOCK"
	// ErrCodeWriteFailure is used when the backing store rejected a write
	ErrCodeWriteFailure = "ERR_WRITE_FAILURE"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,

	ErrCodeInvalidState:      http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,

	ErrCodeWriteFailure: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code, defaulting
// to 500 for unmapped codes
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping maps domain error codes to transport error codes
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":          ErrCodeNotFound,
	"ALREADY_EXISTS":     ErrCodeAlreadyExists,
	"INVALID_STATE":      ErrCodeInvalidState,
	"INSUFFICIENT_STOCK": ErrCodeInsufficientStock,
	"WRITE_FAILURE":      ErrCodeWriteFailure,
	"INVALID_INPUT":      ErrCodeInvalidInput,
}

// NormalizeErrorCode converts a domain error code to the transport format.
// Validation-style domain codes (INVALID_AMOUNT, INVALID_QUANTITY, ...) all
// collapse to invalid input.
func NormalizeErrorCode(code string) string {
	if mapped, ok := domainErrorCodeMapping[code]; ok {
		return mapped
	}
	if strings.HasPrefix(code, "INVALID_") {
		return ErrCodeInvalidInput
	}
	return code
}
