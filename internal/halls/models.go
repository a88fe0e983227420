package halls

import (
	"time"

	"github.com/google/uuid"
)

// TheatreHall describes the physical seat grid of a hall: a rectangle of
// Rows x SeatsInRow numbered seats. Performances reference a hall, and every
// ticket sold for a performance must land inside this grid.
type TheatreHall struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name       string    `json:"name" gorm:"not null;size:63"`
	Rows       int       `json:"rows" gorm:"not null;check:rows > 0"`
	SeatsInRow int       `json:"seats_in_row" gorm:"not null;check:seats_in_row > 0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Capacity is the total number of seats in the hall.
func (h *TheatreHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

func (h *TheatreHall) ToResponse() HallResponse {
	return HallResponse{
		ID:         h.ID.String(),
		Name:       h.Name,
		Rows:       h.Rows,
		SeatsInRow: h.SeatsInRow,
		Capacity:   h.Capacity(),
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
	}
}

// TableName specifies the table name for GORM
func (TheatreHall) TableName() string {
	return "theatre_halls"
}
