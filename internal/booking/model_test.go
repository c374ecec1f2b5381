package booking_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/booking"
	"shareit/internal/pkg/apperror"
)

func TestParseState(t *testing.T) {
	t.Run("absent means ALL", func(t *testing.T) {
		for _, raw := range []string{"", "  "} {
			state, err := booking.ParseState(raw)
			require.NoError(t, err)
			assert.Equal(t, booking.StateAll, state)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		cases := map[string]booking.State{
			"ALL":      booking.StateAll,
			"current":  booking.StateCurrent,
			"Past":     booking.StatePast,
			"FUTURE":   booking.StateFuture,
			"waiting":  booking.StateWaiting,
			"rejected": booking.StateRejected,
			" past ":   booking.StatePast,
		}
		for raw, want := range cases {
			state, err := booking.ParseState(raw)
			require.NoError(t, err, "raw=%q", raw)
			assert.Equal(t, want, state, "raw=%q", raw)
		}
	})

	t.Run("unknown value rejected", func(t *testing.T) {
		_, err := booking.ParseState("SOMEDAY")
		require.Error(t, err)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, "SOMEDAY")
	})

	t.Run("APPROVED is not a query state", func(t *testing.T) {
		_, err := booking.ParseState("APPROVED")
		assert.Error(t, err)
	})
}
