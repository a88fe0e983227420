package performances

import "time"

type CreatePerformanceRequest struct {
	PlayID        string    `json:"play_id" binding:"required,uuid"`
	TheatreHallID string    `json:"theatre_hall_id" binding:"required,uuid"`
	ShowTime      time.Time `json:"show_time" binding:"required"`
}

type UpdatePerformanceRequest struct {
	PlayID        *string    `json:"play_id,omitempty" binding:"omitempty,uuid"`
	TheatreHallID *string    `json:"theatre_hall_id,omitempty" binding:"omitempty,uuid"`
	ShowTime      *time.Time `json:"show_time,omitempty"`
}

// PerformanceListQuery filters the schedule. Date matches the calendar
// day of show_time (UTC), format 2006-01-02.
type PerformanceListQuery struct {
	Play  string `form:"play" binding:"omitempty,uuid"`
	Date  string `form:"date"`
	Page  int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
