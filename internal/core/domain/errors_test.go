package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrInvalidPhone", ErrInvalidPhone},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrMissingNameColumn", ErrMissingNameColumn},
		{"ErrRegisterUnavailable", ErrRegisterUnavailable},
		{"ErrRateLimited", ErrRateLimited},
		{"ErrRegisterClosed", ErrRegisterClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrInvalidPhone,
		ErrUnsupportedType,
		ErrMissingNameColumn,
		ErrRegisterUnavailable,
		ErrRateLimited,
		ErrRegisterClosed,
	}

	// Check that each error is unique
	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

// TestErrors_WithWrapping tests error wrapping behavior
func TestErrors_WithWrapping(t *testing.T) {
	wrappedErr := fmt.Errorf("searching register for %q: %w", "Ace Pharmacy", ErrRegisterUnavailable)

	// Should still be identifiable as ErrRegisterUnavailable
	assert.True(t, errors.Is(wrappedErr, ErrRegisterUnavailable))
	assert.Contains(t, wrappedErr.Error(), "register unavailable")
}

// TestErrInvalidPhone tests ErrInvalidPhone error
func TestErrInvalidPhone(t *testing.T) {
	assert.Equal(t, "invalid phone number", ErrInvalidPhone.Error())
	assert.True(t, errors.Is(ErrInvalidPhone, ErrInvalidPhone))
	assert.False(t, errors.Is(ErrInvalidPhone, ErrInvalidInput))
}

// TestErrors_InSwitchStatement tests using errors in switch statements
func TestErrors_InSwitchStatement(t *testing.T) {
	testErr := fmt.Errorf("loading input: %w", ErrMissingNameColumn)

	var result string
	switch {
	case errors.Is(testErr, ErrUnsupportedType):
		result = "bad filetype"
	case errors.Is(testErr, ErrMissingNameColumn):
		result = "no name column"
	default:
		result = "unknown"
	}

	assert.Equal(t, "no name column", result)
}
