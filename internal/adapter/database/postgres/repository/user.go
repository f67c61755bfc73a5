package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"todoapi/internal/adapter/database/postgres"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	tel "todoapi/internal/core/telemetry"
)

const userColumns = "id, uuid, email, encrypted_password, created_at, updated_at"

type UserRepository struct {
	db        *postgres.DB
	telemetry port.Telemetry
}

func NewUserRepository(db *postgres.DB, telemetry port.Telemetry) port.UserRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &UserRepository{db: db, telemetry: telemetry}
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, "Create", "user", nil)
	defer span.End()

	start := time.Now()

	query := ur.db.QueryBuilder.Insert("users").
		Columns("uuid", "email", "encrypted_password", "created_at", "updated_at").
		Values(user.UUID, user.Email, user.EncryptedPassword, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING " + userColumns)

	stmt, args, err := query.ToSql()

	if err != nil {
		ur.telemetry.RecordRepositoryOperation(ctx, "Create", "user", time.Since(start), err)
		return domain.User{}, err
	}

	var saved domain.User

	err = ur.db.QueryRow(ctx, stmt, args...).Scan(
		&saved.ID, &saved.UUID, &saved.Email, &saved.EncryptedPassword, &saved.CreatedAt, &saved.UpdatedAt,
	)

	ur.telemetry.RecordRepositoryOperation(ctx, "Create", "user", time.Since(start), err)

	if err != nil {
		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	return saved, nil
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, "GetByEmail", "user", []attribute.KeyValue{
		attribute.String("db.lookup", "email"),
	})
	defer span.End()

	start := time.Now()

	query := ur.db.QueryBuilder.Select(userColumns).
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		ur.telemetry.RecordRepositoryOperation(ctx, "GetByEmail", "user", time.Since(start), err)
		return domain.User{}, err
	}

	var user domain.User

	err = ur.db.QueryRow(ctx, stmt, args...).Scan(
		&user.ID, &user.UUID, &user.Email, &user.EncryptedPassword, &user.CreatedAt, &user.UpdatedAt,
	)

	ur.telemetry.RecordRepositoryOperation(ctx, "GetByEmail", "user", time.Since(start), err)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.E(domain.KindNotFound, "User not found")
	}

	if err != nil {
		slog.Error("Error getting user by email", "error", err)
		return domain.User{}, err
	}

	return user, nil
}
