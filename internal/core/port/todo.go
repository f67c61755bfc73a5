package port

import (
	"context"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
)

type TodoRepository interface {
	// ListByUser returns every todo owned by userID, newest first.
	ListByUser(ctx context.Context, userID int) ([]domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	// UpdateOwned applies the patch to the todo matching (uid, userID) in a
	// single statement. The ownership filter is the authorization boundary:
	// a missing row and a row owned by someone else are both KindNotFound.
	UpdateOwned(ctx context.Context, userID int, uid string, patch domain.TodoPatch) (domain.Todo, error)
	// DeleteOwned removes the todo matching (uid, userID). Not-found
	// semantics are identical to UpdateOwned.
	DeleteOwned(ctx context.Context, userID int, uid string) error
}

type TodoService interface {
	List(ctx context.Context, userID int) ([]domain.Todo, error)
	Create(ctx context.Context, userID int, req *request.CreateTodoRequest) (domain.Todo, error)
	Update(ctx context.Context, userID int, uid string, req *request.UpdateTodoRequest) (domain.Todo, error)
	Delete(ctx context.Context, userID int, uid string) error
}
