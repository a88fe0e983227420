package actors

type CreateActorRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=63"`
	LastName  string `json:"last_name" binding:"required,min=1,max=63"`
}

type UpdateActorRequest struct {
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,min=1,max=63"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,min=1,max=63"`
}
