package performances

import "time"

type PerformanceResponse struct {
	ID               string    `json:"id"`
	PlayID           string    `json:"play_id"`
	PlayTitle        string    `json:"play_title"`
	TheatreHallID    string    `json:"theatre_hall_id"`
	TheatreHallName  string    `json:"theatre_hall_name"`
	ShowTime         time.Time `json:"show_time"`
	Capacity         int       `json:"capacity"`
	TicketsAvailable int       `json:"tickets_available"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TakenPlace is a seat already sold for a performance.
type TakenPlace struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type PerformanceDetailResponse struct {
	PerformanceResponse
	Rows        int          `json:"rows"`
	SeatsInRow  int          `json:"seats_in_row"`
	TakenPlaces []TakenPlace `json:"taken_places"`
}

type PaginatedPerformances struct {
	Performances []PerformanceResponse `json:"performances"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}
