package genres

import (
	"time"

	"github.com/google/uuid"
)

// Genre is a normalized catalog label attached to plays (drama, comedy, ...).
type Genre struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:63"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (g *Genre) ToResponse() GenreResponse {
	return GenreResponse{
		ID:        g.ID.String(),
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// TableName specifies the table name for GORM
func (Genre) TableName() string {
	return "genres"
}
