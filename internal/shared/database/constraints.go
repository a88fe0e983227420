package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the database constraints that back the seat
// allocation invariant. The unique index on (performance_id, row, seat) is
// the authoritative guard against double booking: the in-process existence
// check in the reservation service can race between two concurrent requests,
// this index cannot.
func MigrateConstraints(db *gorm.DB) error {
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_ticket_performance_row_seat
		ON tickets (performance_id, row, seat);
	`).Error
	if err != nil {
		return err
	}

	// Index for availability queries (capacity - sold per performance)
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_performance_id
		ON tickets (performance_id);
	`).Error
	if err != nil {
		return err
	}

	// Index for per-user reservation listings
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_reservations_user_created
		ON reservations (user_id, created_at DESC);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
