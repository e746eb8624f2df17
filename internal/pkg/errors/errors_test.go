package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"railway-reservation/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestIsReason(t *testing.T) {
	err := errors.InsufficientSeats(3)

	assert.True(t, errors.IsReason(err, errors.ErrInsufficientSeats))
	assert.False(t, errors.IsReason(err, errors.ErrUnknownTrain))

	wrapped := fmt.Errorf("book: %w", err)
	assert.True(t, errors.IsReason(wrapped, errors.ErrInsufficientSeats))

	available, ok := errors.AvailableSeats(wrapped)
	assert.True(t, ok)
	assert.Equal(t, 3, available)
	assert.Contains(t, err.Error(), "only 3 seats available")
}

func TestWrap(t *testing.T) {
	t.Run("foreign error becomes persistence error", func(t *testing.T) {
		cause := stderrors.New("connection refused")
		err := errors.Wrap(cause, "error insert booking")

		assert.Equal(t, errors.Persistence, errors.TypeOf(err))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "error insert booking: connection refused", err.Error())
	})

	t.Run("domain error passes through", func(t *testing.T) {
		err := errors.Wrap(errors.ErrBookingNotFound, "error cancel booking")
		assert.Equal(t, errors.ErrBookingNotFound, err)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errors.Wrap(nil, "unused"))
	})
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "validation", err: errors.ErrPasswordTooShort, expected: http.StatusBadRequest},
		{name: "not found", err: errors.ErrUnknownTrain, expected: http.StatusNotFound},
		{name: "capacity", err: errors.InsufficientSeats(0), expected: http.StatusConflict},
		{name: "unauthorized", err: errors.ErrInvalidCredentials, expected: http.StatusUnauthorized},
		{name: "persistence", err: stderrors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errors.HTTPStatus(tc.err))
		})
	}
}
