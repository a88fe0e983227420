package halls

type CreateHallRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=63"`
	Rows       int    `json:"rows" binding:"required,min=1"`
	SeatsInRow int    `json:"seats_in_row" binding:"required,min=1"`
}

type UpdateHallRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=63"`
	Rows       *int    `json:"rows" binding:"omitempty,min=1"`
	SeatsInRow *int    `json:"seats_in_row" binding:"omitempty,min=1"`
}

type HallListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search string `form:"search"`
}
