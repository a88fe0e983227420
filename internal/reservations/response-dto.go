package reservations

import (
	"time"

	"github.com/google/uuid"
)

// TicketPerformance summarizes the performance a ticket belongs to so
// a reservation listing reads without extra lookups.
type TicketPerformance struct {
	ID              string    `json:"id"`
	PlayTitle       string    `json:"play_title"`
	TheatreHallName string    `json:"theatre_hall_name"`
	ShowTime        time.Time `json:"show_time"`
}

type TicketResponse struct {
	ID            string             `json:"id"`
	PerformanceID string             `json:"performance_id"`
	Performance   *TicketPerformance `json:"performance,omitempty"`
	Row           int                `json:"row"`
	Seat          int                `json:"seat"`
	CreatedAt     time.Time          `json:"created_at"`
}

type ReservationResponse struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Tickets   []TicketResponse `json:"tickets"`
	CreatedAt time.Time        `json:"created_at"`
}

type PaginatedReservations struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	TotalPages   int                   `json:"total_pages"`
}

func toTicketResponse(t Ticket) TicketResponse {
	response := TicketResponse{
		ID:            t.ID.String(),
		PerformanceID: t.PerformanceID.String(),
		Row:           t.Row,
		Seat:          t.Seat,
		CreatedAt:     t.CreatedAt,
	}
	if t.Performance.ID != uuid.Nil {
		response.Performance = &TicketPerformance{
			ID:              t.Performance.ID.String(),
			PlayTitle:       t.Performance.Play.Title,
			TheatreHallName: t.Performance.TheatreHall.Name,
			ShowTime:        t.Performance.ShowTime,
		}
	}
	return response
}

func toReservationResponse(r *Reservation) ReservationResponse {
	tickets := make([]TicketResponse, len(r.Tickets))
	for i, t := range r.Tickets {
		tickets[i] = toTicketResponse(t)
	}
	return ReservationResponse{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		Tickets:   tickets,
		CreatedAt: r.CreatedAt,
	}
}
