package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("load order: %w", NotFoundError("stock order", "abc"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConcurrencyConflict))
	assert.Equal(t, "stock order abc not found", errors.Unwrap(err).Error())
}

func TestValidationError(t *testing.T) {
	v := NewValidationError()
	require.NoError(t, v.OrNil())

	v.Add("items[0].expected_qty", "must be greater than zero")
	v.Add("items", "duplicate product %s", "p1")

	err := v.OrNil()
	require.Error(t, err)
	assert.True(t, errors.Is(err, NewDomainError(CodeValidation, "")))
	assert.Contains(t, err.Error(), "items[0].expected_qty: must be greater than zero")
	assert.Contains(t, err.Error(), "duplicate product p1")

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Fields, 2)
}

func TestPage_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Page
		want Page
	}{
		{"defaults", Page{}, Page{Skip: 0, Limit: DefaultLimit}},
		{"negative skip", Page{Skip: -3, Limit: 10}, Page{Skip: 0, Limit: 10}},
		{"over max", Page{Skip: 5, Limit: 1000}, Page{Skip: 5, Limit: MaxLimit}},
		{"in range", Page{Skip: 20, Limit: 200}, Page{Skip: 20, Limit: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}
