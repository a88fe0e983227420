package reservations

import "stagely/internal/halls"

// ValidateSeat checks a single seat request against a hall grid. Rows
// and seats are 1-based and inclusive of the upper bound. The check is
// pure: it says nothing about whether the seat is already sold.
func ValidateSeat(ticketIndex, row, seat int, hall *halls.TheatreHall) error {
	if row < 1 || row > hall.Rows {
		return &SeatOutOfRangeError{
			TicketIndex: ticketIndex,
			Field:       "row",
			Value:       row,
			Max:         hall.Rows,
		}
	}
	if seat < 1 || seat > hall.SeatsInRow {
		return &SeatOutOfRangeError{
			TicketIndex: ticketIndex,
			Field:       "seat",
			Value:       seat,
			Max:         hall.SeatsInRow,
		}
	}
	return nil
}
