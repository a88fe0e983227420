package plays

import (
	"time"

	"stagely/internal/actors"
	"stagely/internal/genres"

	"github.com/google/uuid"
)

type Play struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string         `json:"title" gorm:"not null;size:255;index"`
	Description string         `json:"description" gorm:"type:text"`
	ImageURL    string         `json:"image_url" gorm:"size:512"`
	Genres      []genres.Genre `json:"genres" gorm:"many2many:play_genres;"`
	Actors      []actors.Actor `json:"actors" gorm:"many2many:play_actors;"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Play) TableName() string {
	return "plays"
}

func (p *Play) ToResponse() PlayResponse {
	genreResponses := make([]PlayGenre, len(p.Genres))
	for i, g := range p.Genres {
		genreResponses[i] = PlayGenre{ID: g.ID.String(), Name: g.Name}
	}

	actorResponses := make([]PlayActor, len(p.Actors))
	for i, a := range p.Actors {
		actorResponses[i] = PlayActor{
			ID:        a.ID.String(),
			FirstName: a.FirstName,
			LastName:  a.LastName,
			FullName:  a.FullName(),
		}
	}

	return PlayResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Genres:      genreResponses,
		Actors:      actorResponses,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
