package performances

import (
	"time"

	"stagely/internal/halls"
	"stagely/internal/plays"

	"github.com/google/uuid"
)

type Performance struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PlayID        uuid.UUID         `json:"play_id" gorm:"type:uuid;not null;index"`
	Play          plays.Play        `json:"play" gorm:"foreignKey:PlayID"`
	TheatreHallID uuid.UUID         `json:"theatre_hall_id" gorm:"type:uuid;not null;index"`
	TheatreHall   halls.TheatreHall `json:"theatre_hall" gorm:"foreignKey:TheatreHallID"`
	ShowTime      time.Time         `json:"show_time" gorm:"not null;index"`
	CreatedAt     time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Performance) TableName() string {
	return "performances"
}
