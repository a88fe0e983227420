package genres

import "time"

type GenreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaySummary is a slim play reference for the genre detail view.
type PlaySummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type GenreDetailResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Plays []PlaySummary `json:"plays"`
}
