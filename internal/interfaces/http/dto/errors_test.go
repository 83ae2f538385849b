package dto

import (
	"net/http"
	"testing"

	"github.com/erp/stockflow/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		domain string
		api    string
		status int
	}{
		{shared.CodeNotFound, ErrCodeNotFound, http.StatusNotFound},
		{shared.CodeValidation, ErrCodeValidation, http.StatusBadRequest},
		{shared.CodeInvalidInput, ErrCodeInvalidInput, http.StatusBadRequest},
		{shared.CodeConcurrencyConflict, ErrCodeConcurrencyConflict, http.StatusConflict},
		{shared.CodeDuplicateRequest, ErrCodeDuplicateRequest, http.StatusConflict},
		{shared.CodeInvalidTransition, ErrCodeInvalidTransition, http.StatusUnprocessableEntity},
		{shared.CodeUnauthorized, ErrCodeUnauthorized, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			code := NormalizeErrorCode(tt.domain)
			assert.Equal(t, tt.api, code)
			assert.Equal(t, tt.status, GetHTTPStatus(code))
		})
	}
}

func TestNormalizeErrorCode_Unknown(t *testing.T) {
	assert.Equal(t, "SOMETHING_ELSE", NormalizeErrorCode("SOMETHING_ELSE"))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}

func TestNewDetailedErrorResponse(t *testing.T) {
	resp := NewDetailedErrorResponse(ErrCodeInvalidTransition, "nope", "req-1",
		TransitionDetails{Type: "shipment", From: "received", To: "draft", Allowed: []string{}})

	assert.False(t, resp.Success)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	details, ok := resp.Error.Details.(TransitionDetails)
	assert.True(t, ok)
	assert.Empty(t, details.Allowed)
}

func TestNewValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse("Request validation failed", "req-2",
		[]ValidationDetail{{Field: "items", Message: "This field is required"}})

	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Len(t, resp.Error.Details, 1)
}
