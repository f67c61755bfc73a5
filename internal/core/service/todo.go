package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	tel "todoapi/internal/core/telemetry"
)

const listCacheTTL = 30 * time.Second

type TodoService struct {
	repo      port.TodoRepository
	cache     port.CacheRepository
	telemetry port.Telemetry
}

func NewTodoService(repo port.TodoRepository, cache port.CacheRepository, telemetry port.Telemetry) *TodoService {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TodoService{repo: repo, cache: cache, telemetry: telemetry}
}

func listCacheKey(userID int) string {
	return fmt.Sprintf("todos:user:%d", userID)
}

// List returns the caller's todos, newest first. The per-user result is
// cached briefly; every write invalidates it.
func (ts *TodoService) List(ctx context.Context, userID int) ([]domain.Todo, error) {
	ctx, span := ts.telemetry.StartServiceSpan(ctx, "todo", "List", userID, nil)
	defer span.End()

	key := listCacheKey(userID)

	if ts.cache != nil {
		if data, err := ts.cache.Get(ctx, key); err == nil && data != nil {
			var todos []domain.Todo

			if err := json.Unmarshal(data, &todos); err == nil {
				ts.telemetry.RecordCacheHit(ctx, "todos:list")
				return todos, nil
			}
		}

		ts.telemetry.RecordCacheMiss(ctx, "todos:list")
	}

	todos, err := ts.repo.ListByUser(ctx, userID)

	if err != nil {
		return nil, domain.E(domain.KindStore, "Failed to fetch todos", err)
	}

	if ts.cache != nil {
		if data, err := json.Marshal(todos); err == nil {
			if err := ts.cache.Set(ctx, key, data, listCacheTTL); err != nil {
				slog.Warn("Failed to cache todo list", "error", err, "user_id", userID)
			}
		}
	}

	return todos, nil
}

func (ts *TodoService) Create(ctx context.Context, userID int, req *request.CreateTodoRequest) (domain.Todo, error) {
	ctx, span := ts.telemetry.StartServiceSpan(ctx, "todo", "Create", userID, nil)
	defer span.End()

	now := time.Now()

	todo := domain.Todo{
		UUID:      uuid.New(),
		Title:     req.Title,
		Completed: false,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := ts.repo.Create(ctx, todo)

	if err != nil {
		slog.Error("Repository create failed", "error", err, "title", todo.Title)
		return domain.Todo{}, domain.E(domain.KindStore, "Failed to create todo", err)
	}

	ts.invalidateList(ctx, userID)
	ts.telemetry.RecordBusinessEvent(ctx, "created", "todo", saved.UUID.String(), userID)

	return saved, nil
}

func (ts *TodoService) Update(ctx context.Context, userID int, uid string, req *request.UpdateTodoRequest) (domain.Todo, error) {
	ctx, span := ts.telemetry.StartServiceSpan(ctx, "todo", "Update", userID, nil)
	defer span.End()

	patch := domain.TodoPatch{
		Title:     req.Title,
		Completed: req.Completed,
	}

	updated, err := ts.repo.UpdateOwned(ctx, userID, uid, patch)

	if domain.IsNotFound(err) {
		return domain.Todo{}, err
	}

	if err != nil {
		return domain.Todo{}, domain.E(domain.KindStore, "Failed to update todo", err)
	}

	ts.invalidateList(ctx, userID)
	ts.telemetry.RecordBusinessEvent(ctx, "updated", "todo", uid, userID)

	return updated, nil
}

func (ts *TodoService) Delete(ctx context.Context, userID int, uid string) error {
	ctx, span := ts.telemetry.StartServiceSpan(ctx, "todo", "Delete", userID, nil)
	defer span.End()

	err := ts.repo.DeleteOwned(ctx, userID, uid)

	if domain.IsNotFound(err) {
		return err
	}

	if err != nil {
		return domain.E(domain.KindStore, "Failed to delete todo", err)
	}

	ts.invalidateList(ctx, userID)
	ts.telemetry.RecordBusinessEvent(ctx, "deleted", "todo", uid, userID)

	return nil
}

func (ts *TodoService) invalidateList(ctx context.Context, userID int) {
	if ts.cache == nil {
		return
	}

	if err := ts.cache.Delete(ctx, listCacheKey(userID)); err != nil {
		slog.Warn("Failed to invalidate todo list cache", "error", err, "user_id", userID)
	}
}
