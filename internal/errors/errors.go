package errors

import (
	stderrors "errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-list/internal/middleware"
	"github.com/yukikurage/todo-list/internal/services"
)

// Error codes
const (
	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeInvalidID    = "INVALID_ID"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"

	// Storage rejected the write
	ErrCodeConstraintViolation = "CONSTRAINT_VIOLATION"

	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.AbortWithStatusJSON(statusCode, err)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, message))
}

// InvalidID sends a 400 response for a malformed :id
func InvalidID(c *gin.Context) {
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidID, "Invalid todo ID"))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

// FromServiceError maps a TodoService error onto an HTTP response
func FromServiceError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, services.ErrInvalidState), stderrors.Is(err, services.ErrInvalidCategory):
		BadRequest(c, err.Error())
	case stderrors.Is(err, services.ErrConstraintViolation):
		RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeConstraintViolation, err.Error()))
	case stderrors.Is(err, services.ErrTodoNotFound):
		NotFound(c, "Todo not found")
	default:
		log.Printf("[%s] request failed: %v", middleware.GetRequestID(c), err)
		InternalError(c, "")
	}
}
