package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.opentelemetry.io/otel/attribute"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	tel "todoapi/internal/core/telemetry"
)

const todoColumns = "id, uuid, title, completed, user_id, created_at, updated_at"

type TodoRepository struct {
	db        *sqlite.DB
	telemetry port.Telemetry
}

func NewTodoRepository(db *sqlite.DB, telemetry port.Telemetry) port.TodoRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TodoRepository{db: db, telemetry: telemetry}
}

func scanTodo(row sq.RowScanner) (domain.Todo, error) {
	var todo domain.Todo

	err := row.Scan(&todo.ID, &todo.UUID, &todo.Title, &todo.Completed, &todo.UserID, &todo.CreatedAt, &todo.UpdatedAt)

	return todo, err
}

func (tr *TodoRepository) ListByUser(ctx context.Context, userID int) ([]domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "ListByUser", "todo", []attribute.KeyValue{
		attribute.Int("user.id", userID),
	})
	defer span.End()

	start := time.Now()

	query := tr.db.QueryBuilder.Select(todoColumns).
		From("todos").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC, id DESC")

	stmt, args, err := query.ToSql()

	if err != nil {
		tr.telemetry.RecordRepositoryOperation(ctx, "ListByUser", "todo", time.Since(start), err)
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error fetching todos", "error", err, "user_id", userID)
		tr.telemetry.RecordRepositoryOperation(ctx, "ListByUser", "todo", time.Since(start), err)
		return nil, err
	}

	defer rows.Close()

	todos := []domain.Todo{}

	for rows.Next() {
		var todo domain.Todo

		err = rows.Scan(&todo.ID, &todo.UUID, &todo.Title, &todo.Completed, &todo.UserID, &todo.CreatedAt, &todo.UpdatedAt)

		if err != nil {
			tr.telemetry.RecordRepositoryOperation(ctx, "ListByUser", "todo", time.Since(start), err)
			return nil, err
		}

		todos = append(todos, todo)
	}

	span.SetAttributes(attribute.Int("db.rows_returned", len(todos)))
	tr.telemetry.RecordRepositoryOperation(ctx, "ListByUser", "todo", time.Since(start), rows.Err())

	return todos, rows.Err()
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Create", "todo", []attribute.KeyValue{
		attribute.Int("user.id", todo.UserID),
	})
	defer span.End()

	start := time.Now()

	query := tr.db.QueryBuilder.Insert("todos").
		Columns("uuid", "title", "completed", "user_id", "created_at", "updated_at").
		Values(todo.UUID, todo.Title, todo.Completed, todo.UserID, todo.CreatedAt, todo.UpdatedAt).
		Suffix("RETURNING " + todoColumns)

	stmt, args, err := query.ToSql()

	if err != nil {
		tr.telemetry.RecordRepositoryOperation(ctx, "Create", "todo", time.Since(start), err)
		return domain.Todo{}, err
	}

	saved, err := scanTodo(tr.db.QueryRowContext(ctx, stmt, args...))

	tr.telemetry.RecordRepositoryOperation(ctx, "Create", "todo", time.Since(start), err)

	if err != nil {
		slog.Error("Error creating todo", "error", err)
		return domain.Todo{}, err
	}

	return saved, nil
}

func (tr *TodoRepository) UpdateOwned(ctx context.Context, userID int, uid string, patch domain.TodoPatch) (domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "UpdateOwned", "todo", []attribute.KeyValue{
		attribute.Int("user.id", userID),
		attribute.String("todo.uuid", uid),
	})
	defer span.End()

	start := time.Now()

	query := tr.db.QueryBuilder.Update("todos").
		Set("updated_at", time.Now())

	if patch.Title != nil {
		query = query.Set("title", *patch.Title)
	}

	if patch.Completed != nil {
		query = query.Set("completed", *patch.Completed)
	}

	// Filtering on (uuid, user_id) is the only authorization check: rows
	// owned by someone else are indistinguishable from missing rows.
	query = query.
		Where(sq.Eq{"uuid": uid}).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + todoColumns)

	stmt, args, err := query.ToSql()

	if err != nil {
		tr.telemetry.RecordRepositoryOperation(ctx, "UpdateOwned", "todo", time.Since(start), err)
		return domain.Todo{}, err
	}

	updated, err := scanTodo(tr.db.QueryRowContext(ctx, stmt, args...))

	tr.telemetry.RecordRepositoryOperation(ctx, "UpdateOwned", "todo", time.Since(start), err)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Todo{}, domain.E(domain.KindNotFound, "Todo not found")
	}

	if err != nil {
		slog.Error("Error updating todo", "error", err, "uuid", uid)
		return domain.Todo{}, err
	}

	return updated, nil
}

func (tr *TodoRepository) DeleteOwned(ctx context.Context, userID int, uid string) error {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "DeleteOwned", "todo", []attribute.KeyValue{
		attribute.Int("user.id", userID),
		attribute.String("todo.uuid", uid),
	})
	defer span.End()

	start := time.Now()

	query := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"uuid": uid}).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING uuid")

	stmt, args, err := query.ToSql()

	if err != nil {
		tr.telemetry.RecordRepositoryOperation(ctx, "DeleteOwned", "todo", time.Since(start), err)
		return err
	}

	var deleted string
	err = tr.db.QueryRowContext(ctx, stmt, args...).Scan(&deleted)

	tr.telemetry.RecordRepositoryOperation(ctx, "DeleteOwned", "todo", time.Since(start), err)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.E(domain.KindNotFound, "Todo not found")
	}

	if err != nil {
		slog.Error("Error deleting todo", "error", err, "uuid", uid)
		return err
	}

	return nil
}
