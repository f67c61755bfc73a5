package response

import (
	"time"

	"todoapi/internal/core/domain"
)

// TodoResponse is the external todo shape. The field names are the wire
// contract; the exposed id is the UUID, never the store serial.
type TodoResponse struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewTodoResponse(todo domain.Todo) TodoResponse {
	return TodoResponse{
		ID:        todo.UUID.String(),
		UserID:    todo.UserID,
		Title:     todo.Title,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt,
	}
}

func NewTodoListResponse(todos []domain.Todo) []TodoResponse {
	data := make([]TodoResponse, 0, len(todos))

	for _, todo := range todos {
		data = append(data, NewTodoResponse(todo))
	}

	return data
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.UUID.String(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

type TokenResponse struct {
	Token string `json:"token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
