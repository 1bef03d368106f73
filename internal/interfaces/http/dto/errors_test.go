package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeInsufficientStock, http.StatusUnprocessableEntity},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodeWriteFailure, http.StatusInternalServerError},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{"ERR_SOMETHING_NEW", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"NOT_FOUND", ErrCodeNotFound},
		{"INSUFFICIENT_STOCK", ErrCodeInsufficientStock},
		{"INVALID_STATE", ErrCodeInvalidState},
		{"WRITE_FAILURE", ErrCodeWriteFailure},
		{"ALREADY_EXISTS", ErrCodeAlreadyExists},
		{"INVALID_AMOUNT", ErrCodeInvalidInput},
		{"INVALID_QUANTITY", ErrCodeInvalidInput},
		{"UNMAPPED", "UNMAPPED"},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeErrorCode(tt.domain))
		})
	}
}
