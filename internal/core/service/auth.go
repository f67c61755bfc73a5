package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	tel "todoapi/internal/core/telemetry"
	"todoapi/internal/core/util"
)

type AuthService struct {
	repo      port.UserRepository
	telemetry port.Telemetry
}

func NewAuthService(repo port.UserRepository, telemetry port.Telemetry) *AuthService {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &AuthService{repo: repo, telemetry: telemetry}
}

func (as *AuthService) Register(ctx context.Context, req *request.SignUpRequest) (*domain.User, error) {
	ctx, span := as.telemetry.StartServiceSpan(ctx, "auth", "Register", 0, nil)
	defer span.End()

	existing, err := as.repo.GetByEmail(ctx, req.Email)

	if err == nil && existing.IsPersisted() {
		return nil, domain.E(domain.KindConflict, "User already exists")
	}

	if err != nil && !domain.IsNotFound(err) {
		return nil, domain.E(domain.KindStore, "Failed to create user", err)
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return nil, domain.E(domain.KindStore, "Failed to create user", err)
	}

	now := time.Now()

	user := domain.User{
		UUID:              uuid.New(),
		Email:             req.Email,
		EncryptedPassword: encrypted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	saved, err := as.repo.Create(ctx, user)

	if err != nil {
		slog.Error("Auth#Register", "create", err)
		return nil, domain.E(domain.KindStore, "Failed to create user", err)
	}

	as.telemetry.RecordBusinessEvent(ctx, "registered", "user", saved.UUID.String(), saved.ID)

	return &saved, nil
}

// Authenticate never reveals whether the email or the password was wrong.
func (as *AuthService) Authenticate(ctx context.Context, req *request.LoginRequest) (*domain.User, error) {
	ctx, span := as.telemetry.StartServiceSpan(ctx, "auth", "Authenticate", 0, nil)
	defer span.End()

	user, err := as.repo.GetByEmail(ctx, req.Email)

	if err != nil {
		slog.Error("Auth#Authenticate", "get_by_email", err)
		return nil, domain.E(domain.KindUnauthorized, "Invalid email or password", err)
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		slog.Error("Auth#Authenticate", "compare_password", err)
		return nil, domain.E(domain.KindUnauthorized, "Invalid email or password", err)
	}

	as.telemetry.RecordBusinessEvent(ctx, "authenticated", "user", user.UUID.String(), user.ID)

	return &user, nil
}
