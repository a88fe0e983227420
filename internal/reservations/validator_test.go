package reservations

import (
	"errors"
	"testing"

	"stagely/internal/halls"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSeat(t *testing.T) {
	hall := &halls.TheatreHall{Rows: 10, SeatsInRow: 15}

	t.Run("accepts seats inside the grid", func(t *testing.T) {
		assert.NoError(t, ValidateSeat(0, 1, 1, hall))
		assert.NoError(t, ValidateSeat(0, 10, 15, hall))
		assert.NoError(t, ValidateSeat(0, 5, 8, hall))
	})

	t.Run("rejects row below range", func(t *testing.T) {
		err := ValidateSeat(2, 0, 5, hall)
		require.Error(t, err)

		var outOfRange *SeatOutOfRangeError
		require.True(t, errors.As(err, &outOfRange))
		assert.Equal(t, 2, outOfRange.TicketIndex)
		assert.Equal(t, "row", outOfRange.Field)
		assert.Equal(t, 0, outOfRange.Value)
		assert.Equal(t, 10, outOfRange.Max)
	})

	t.Run("rejects row above range", func(t *testing.T) {
		err := ValidateSeat(0, 11, 5, hall)
		require.Error(t, err)

		var outOfRange *SeatOutOfRangeError
		require.True(t, errors.As(err, &outOfRange))
		assert.Equal(t, "row", outOfRange.Field)
		assert.Equal(t, 11, outOfRange.Value)
	})

	t.Run("rejects seat out of range", func(t *testing.T) {
		err := ValidateSeat(1, 3, 16, hall)
		require.Error(t, err)

		var outOfRange *SeatOutOfRangeError
		require.True(t, errors.As(err, &outOfRange))
		assert.Equal(t, 1, outOfRange.TicketIndex)
		assert.Equal(t, "seat", outOfRange.Field)
		assert.Equal(t, 16, outOfRange.Value)
		assert.Equal(t, 15, outOfRange.Max)
	})

	t.Run("checks row before seat", func(t *testing.T) {
		err := ValidateSeat(0, 0, 0, hall)
		require.Error(t, err)

		var outOfRange *SeatOutOfRangeError
		require.True(t, errors.As(err, &outOfRange))
		assert.Equal(t, "row", outOfRange.Field)
	})

	t.Run("error message names the valid range", func(t *testing.T) {
		err := ValidateSeat(0, 12, 1, hall)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row number must be in available range: (1, rows): (1, 10)")
	})

	t.Run("single seat hall", func(t *testing.T) {
		tiny := &halls.TheatreHall{Rows: 1, SeatsInRow: 1}
		assert.NoError(t, ValidateSeat(0, 1, 1, tiny))
		assert.Error(t, ValidateSeat(0, 1, 2, tiny))
		assert.Error(t, ValidateSeat(0, 2, 1, tiny))
	})
}
