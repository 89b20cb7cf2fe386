package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses. RequestID is a
// per-response diagnostic id so a caller can quote it back when reporting a
// failure and we can find the matching log line.
type ErrorResponse struct {
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"requestId"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				reqID := uuid.New().String()
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err), zap.String("requestId", reqID))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message:   "Internal Server Error",
					Details:   "An unexpected error occurred. Please try again later.",
					RequestID: reqID,
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	reqID := uuid.New().String()
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details), zap.String("requestId", reqID))
	c.JSON(status, ErrorResponse{Message: message, Details: details, RequestID: reqID})
}
