package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/logger"
)

// ErrorResponse is the error shape shared by every service.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func ErrorWithDetails(c *gin.Context, code int, message, details string) {
	c.JSON(code, ErrorResponse{Error: message, Details: details})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "forbidden")
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "resource not found")
}

// LogInternalError logs the cause with the request id and answers with
// an opaque 500. Driver errors never reach the client body.
func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("internal server error",
		zap.String("request_id", RequestID(c)),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Error(c, http.StatusInternalServerError, "internal server error")
}

// RequestID returns the id assigned by the request-id middleware, or
// an empty string outside a request scope.
func RequestID(c *gin.Context) string {
	return c.GetString("request_id")
}
