package errorwrapper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "wrap nil error",
			originalError:   nil,
			message:         "wrapper message",
			expectedMessage: "wrapper message: <nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			assert.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
		})
	}
}

func TestKindError_Is(t *testing.T) {
	err := NewKindError(ErrInvalidColor, "color", "zz", "not a hex string")
	wrapped := fmt.Errorf("set color: %w", err)

	assert.ErrorIs(t, wrapped, ErrInvalidColor)
	assert.NotErrorIs(t, wrapped, ErrInvalidTimestamp)

	var ve *ValidationError
	assert.ErrorAs(t, wrapped, &ve)
	assert.Equal(t, "color", ve.Field)
	assert.Contains(t, err.Error(), "not a hex string")
}

func TestValidationError_NoKind(t *testing.T) {
	err := NewValidationError("field", 1, "bad")
	assert.Nil(t, errors.Unwrap(err))
	assert.Equal(t, "validation error: field 'field' with value '1': bad", err.Error())
}

func TestIsTransportError(t *testing.T) {
	assert.True(t, IsTransportError(NewHTTPErrorWithURL(404, "unknown webhook", "http://x")))
	assert.True(t, IsTransportError(WrapError(NewNetworkError("http://x", "dial failed", errors.New("refused")), "send")))
	assert.False(t, IsTransportError(ErrInvalidField))

	httpErr := NewHTTPErrorWithURL(500, "boom", "")
	assert.Equal(t, "HTTP 500 error: boom", httpErr.Error())
}
