package plays

import "time"

type PlayGenre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PlayActor struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

type PlayResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image_url,omitempty"`
	Genres      []PlayGenre `json:"genres"`
	Actors      []PlayActor `json:"actors"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type PaginatedPlays struct {
	Plays      []PlayResponse `json:"plays"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

type UploadImageResponse struct {
	PlayID   string `json:"play_id"`
	ImageURL string `json:"image_url"`
}
