package reservations

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrEmptyBatch rejects a reservation request with no tickets.
	ErrEmptyBatch = errors.New("a reservation must contain at least one ticket")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrNotReservationOwner = errors.New("reservation belongs to another user")
)

// SeatOutOfRangeError reports a ticket whose row or seat falls outside
// the hall grid. TicketIndex is the position in the submitted batch.
type SeatOutOfRangeError struct {
	TicketIndex int
	Field       string // "row" or "seat"
	Value       int
	Max         int
}

func (e *SeatOutOfRangeError) Error() string {
	rangeName := "rows"
	if e.Field == "seat" {
		rangeName = "seats_in_row"
	}
	return fmt.Sprintf("ticket %d: %s number must be in available range: (1, %s): (1, %d), got %d",
		e.TicketIndex, e.Field, rangeName, e.Max, e.Value)
}

// SeatTakenError reports a seat that is already sold for the
// performance, whether by an earlier reservation or by the same batch.
type SeatTakenError struct {
	PerformanceID uuid.UUID
	Row           int
	Seat          int
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat (row %d, seat %d) is already taken for performance %s",
		e.Row, e.Seat, e.PerformanceID)
}
