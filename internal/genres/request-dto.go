package genres

type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,min=1,max=63"`
}

type UpdateGenreRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=1,max=63"`
}
