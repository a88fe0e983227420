package reservations

type TicketRequest struct {
	PerformanceID string `json:"performance_id" binding:"required,uuid"`
	Row           int    `json:"row" binding:"required,min=1"`
	Seat          int    `json:"seat" binding:"required,min=1"`
}

type CreateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets"`
}

type ReservationListQuery struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
