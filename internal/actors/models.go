package actors

import (
	"time"

	"github.com/google/uuid"
)

type Actor struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName string    `json:"first_name" gorm:"not null;size:63"`
	LastName  string    `json:"last_name" gorm:"not null;size:63"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Actor) TableName() string {
	return "actors"
}

func (a *Actor) FullName() string {
	return a.FirstName + " " + a.LastName
}

func (a *Actor) ToResponse() ActorResponse {
	return ActorResponse{
		ID:        a.ID.String(),
		FirstName: a.FirstName,
		LastName:  a.LastName,
		FullName:  a.FullName(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
