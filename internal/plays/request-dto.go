package plays

type CreatePlayRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"required"`
	GenreIDs    []string `json:"genre_ids" binding:"omitempty,dive,uuid"`
	ActorIDs    []string `json:"actor_ids" binding:"omitempty,dive,uuid"`
}

type UpdatePlayRequest struct {
	Title       *string   `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string   `json:"description,omitempty"`
	GenreIDs    *[]string `json:"genre_ids,omitempty" binding:"omitempty,dive,uuid"`
	ActorIDs    *[]string `json:"actor_ids,omitempty" binding:"omitempty,dive,uuid"`
}

// PlayListQuery carries the list filters. Genres and Actors take
// comma-separated IDs; a play matches when it has at least one genre
// from the genre list and at least one actor from the actor list.
type PlayListQuery struct {
	Title  string `form:"title"`
	Genres string `form:"genres"`
	Actors string `form:"actors"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
