package reservations

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateTicketInsertError(t *testing.T) {
	ticket := &Ticket{
		ID:            uuid.New(),
		PerformanceID: uuid.New(),
		Row:           3,
		Seat:          7,
	}

	t.Run("unique violation becomes SeatTakenError with the seat coordinates", func(t *testing.T) {
		dbErr := &pgconn.PgError{Code: "23505", ConstraintName: "uniq_ticket_performance_row_seat"}

		err := translateTicketInsertError(dbErr, ticket)

		var seatErr *SeatTakenError
		require.ErrorAs(t, err, &seatErr)
		assert.Equal(t, ticket.PerformanceID, seatErr.PerformanceID)
		assert.Equal(t, 3, seatErr.Row)
		assert.Equal(t, 7, seatErr.Seat)
	})

	t.Run("wrapped unique violation is still recognized", func(t *testing.T) {
		dbErr := fmt.Errorf("create ticket: %w", &pgconn.PgError{Code: "23505"})

		err := translateTicketInsertError(dbErr, ticket)

		var seatErr *SeatTakenError
		assert.ErrorAs(t, err, &seatErr)
	})

	t.Run("other postgres errors pass through", func(t *testing.T) {
		dbErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_tickets_reservation"}

		err := translateTicketInsertError(dbErr, ticket)

		var seatErr *SeatTakenError
		assert.False(t, errors.As(err, &seatErr))
		assert.Equal(t, error(dbErr), err)
	})

	t.Run("non-postgres errors pass through", func(t *testing.T) {
		dbErr := errors.New("connection reset")

		err := translateTicketInsertError(dbErr, ticket)
		assert.Equal(t, dbErr, err)
	})
}
