package domain

import (
	"time"

	"github.com/google/uuid"
)

type Todo struct {
	ID        int
	UUID      uuid.UUID
	Title     string `validate:"required,max=255"`
	Completed bool
	UserID    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TodoPatch carries the mutable fields of a partial update. A nil field
// leaves the stored value unchanged.
type TodoPatch struct {
	Title     *string
	Completed *bool
}

func (p *TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}

func (t *Todo) BelongsToUser(userID int) bool {
	return t.UserID == userID
}

func (t *Todo) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":         t.ID,
		"uuid":       t.UUID,
		"title":      t.Title,
		"completed":  t.Completed,
		"user_id":    t.UserID,
		"created_at": t.CreatedAt,
		"updated_at": t.UpdatedAt,
	}
}
