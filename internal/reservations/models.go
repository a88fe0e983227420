package reservations

import (
	"time"

	"stagely/internal/performances"

	"github.com/google/uuid"
)

// Reservation groups the tickets a user bought in one request. It is
// created atomically with its tickets and never partially persisted.
type Reservation struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Tickets   []Ticket  `json:"tickets" gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// Ticket is one sold seat for one performance. The composite unique
// index on (performance_id, row, seat) is the authoritative guard
// against double booking under concurrency.
type Ticket struct {
	ID            uuid.UUID                `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReservationID uuid.UUID                `json:"reservation_id" gorm:"type:uuid;not null;index"`
	PerformanceID uuid.UUID                `json:"performance_id" gorm:"type:uuid;not null;uniqueIndex:uniq_ticket_performance_row_seat"`
	Performance   performances.Performance `json:"performance" gorm:"foreignKey:PerformanceID"`
	Row           int                      `json:"row" gorm:"not null;uniqueIndex:uniq_ticket_performance_row_seat"`
	Seat          int                      `json:"seat" gorm:"not null;uniqueIndex:uniq_ticket_performance_row_seat"`
	CreatedAt     time.Time                `json:"created_at" gorm:"autoCreateTime"`
}

func (Ticket) TableName() string {
	return "tickets"
}
