package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"
)

// statusByKind is the single place error kinds become HTTP statuses.
// Handlers call SendAppError; nothing else maps errors.
var statusByKind = map[domain.Kind]int{
	domain.KindValidation:   http.StatusBadRequest,
	domain.KindUnauthorized: http.StatusUnauthorized,
	domain.KindNotFound:     http.StatusNotFound,
	domain.KindConflict:     http.StatusConflict,
	domain.KindStore:        http.StatusInternalServerError,
	domain.KindConfig:       http.StatusInternalServerError,
}

// SendAppError resolves any error to a fixed {message} body. Wrapped
// store detail stays in logs and spans, never in the response.
func SendAppError(c *gin.Context, err error) {
	var appErr *domain.Error

	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, response.MessageResponse{Message: "Internal server error"})
		return
	}

	status, ok := statusByKind[appErr.Kind]

	if !ok {
		status = http.StatusInternalServerError
	}

	c.JSON(status, response.MessageResponse{Message: appErr.Message})
}

// SendValidationError reports the first field failure as the message, so
// a missing title surfaces as exactly "Title is required".
func SendValidationError(c *gin.Context, err error) {
	fieldErrors := validation.FormatValidationErrors(err)

	if len(fieldErrors) == 0 {
		SendMessage(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	SendMessage(c, http.StatusBadRequest, fieldErrors[0].Message)
}

func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, response.MessageResponse{Message: message})
}

func SendUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.MessageResponse{Message: message})
}
