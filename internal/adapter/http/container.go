package http

import (
	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/pkg/logging"
)

type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository

	AuthUseCase port.AuthService
	TodoUseCase port.TodoService

	AuthHandler *handler.AuthHandler
	TodoHandler *handler.TodoHandler
}

func NewContainer(userRepo port.UserRepository, todoRepo port.TodoRepository, cache port.CacheRepository, probe port.Telemetry, logger *logging.AppLogger) *Container {
	authSvc := service.NewAuthService(userRepo, probe)
	todoSvc := service.NewTodoService(todoRepo, cache, probe)

	authHandler := handler.NewAuthHandler(authSvc)
	todoHandler := handler.NewTodoHandler(todoSvc, logger)

	return &Container{
		UserRepo: userRepo,
		TodoRepo: todoRepo,

		AuthUseCase: authSvc,
		TodoUseCase: todoSvc,

		AuthHandler: authHandler,
		TodoHandler: todoHandler,
	}
}
