package request

type SignUpRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email,max=255"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email,max=255"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=100"`
}

type CreateTodoRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// UpdateTodoRequest uses pointers so an omitted field is distinguishable
// from a zero value: omitted means unchanged.
type UpdateTodoRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=255"`
	Completed *bool   `json:"completed"`
}
