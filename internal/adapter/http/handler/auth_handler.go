package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/pkg/auth"
)

type AuthHandler struct {
	svc port.AuthService
}

func NewAuthHandler(svc port.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (a *AuthHandler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := helper.ParamsToStruct[request.SignUpRequest](c)

	if err != nil {
		helper.SendMessage(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	user, err := a.svc.Register(ctx, &params)

	if err != nil {
		slog.Error("Auth#SignUp", "error", err)
		helper.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewUserResponse(user))
}

func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := helper.ParamsToStruct[request.LoginRequest](c)

	if err != nil {
		helper.SendMessage(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	user, err := a.svc.Authenticate(ctx, &params)

	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	token, err := auth.CreateJwtTokenForUser(user.ID)

	if err != nil {
		slog.Error("Auth#Login", "create_token", err)
		helper.SendMessage(c, http.StatusInternalServerError, "Failed to generate access token")
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token})
}
