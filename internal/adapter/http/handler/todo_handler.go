package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/pkg/logging"
)

type TodoHandler struct {
	svc    port.TodoService
	logger *logging.AppLogger
}

func NewTodoHandler(svc port.TodoService, logger *logging.AppLogger) *TodoHandler {
	return &TodoHandler{svc: svc, logger: logger}
}

// GetAllTodos returns the caller's todos, newest first.
func (t *TodoHandler) GetAllTodos(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.CurrentUserID(c)

	todos, err := t.svc.List(ctx, userID)

	if err != nil {
		if t.logger != nil {
			t.logger.ErrorWithTrace(ctx, "Failed to get todos",
				zap.Error(err),
				zap.Int("user_id", userID),
			)
		}

		helper.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewTodoListResponse(todos))
}

// CreateTodo validates the title before the store is touched; the owner
// is always the authenticated caller, never a body field.
func (t *TodoHandler) CreateTodo(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.CurrentUserID(c)

	params, err := helper.ParamsToStruct[request.CreateTodoRequest](c)

	// An empty body falls through to validation, which reports the
	// missing title; only malformed JSON is rejected here.
	if err != nil && c.Request.ContentLength > 0 {
		helper.SendMessage(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	todo, err := t.svc.Create(ctx, userID, &params)

	if err != nil {
		if t.logger != nil {
			t.logger.ErrorWithTrace(ctx, "Failed to create todo",
				zap.Error(err),
				zap.Int("user_id", userID),
			)
		}

		helper.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewTodoResponse(todo))
}

// UpdateTodo applies a partial update: omitted fields stay unchanged. A
// todo owned by someone else 404s exactly like a missing one.
func (t *TodoHandler) UpdateTodo(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.CurrentUserID(c)

	params, err := helper.ParamsToStruct[request.UpdateTodoRequest](c)

	if err != nil {
		helper.SendMessage(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	todo, err := t.svc.Update(ctx, userID, c.Param("id"), &params)

	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewTodoResponse(todo))
}

func (t *TodoHandler) DeleteTodo(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.CurrentUserID(c)

	if err := t.svc.Delete(ctx, userID, c.Param("id")); err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendMessage(c, http.StatusOK, "Todo deleted")
}
