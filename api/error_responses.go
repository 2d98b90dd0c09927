package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	internalErrors "github.com/gcbaptista/campus-buzz/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	ErrorCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden        ErrorCode = "FORBIDDEN"
	ErrorCodeConflict         ErrorCode = "CONFLICT"
	ErrorCodeRateLimited      ErrorCode = "RATE_LIMITED"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"

	// Server Error Codes (5xx)
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Success   bool          `json:"success"`
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	return &APIError{
		Success:   false,
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)
	errorResponse.RequestID = requestIDFrom(c)
	c.JSON(statusCode, errorResponse)
}

// AbortWithError sends a standardized error response and stops the handler chain
func AbortWithError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	SendError(c, statusCode, code, message)
	c.Abort()
}

// SendStructuredValidationError sends a validation error with structured details
func SendStructuredValidationError(c *gin.Context, result *ValidationResult) {
	details := make([]ErrorDetail, len(result.Errors))
	for i, err := range result.Errors {
		details[i] = ErrorDetail{
			Field:   err.Field,
			Message: err.Message,
			Code:    "VALIDATION_ERROR",
		}
	}

	SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Request validation failed", details...)
}

// SendNotFoundError sends a standardized not found error
func SendNotFoundError(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, ErrorCodeNotFound, message)
}

// SendInvalidJSONError sends a standardized invalid JSON error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendInternalError logs the cause and sends a generic internal server error.
// Store errors can carry SQL text, so it is not echoed to the client.
func (api *API) SendInternalError(c *gin.Context, operation string, err error) {
	api.requestLogger(c).Error("request failed", zap.String("operation", operation), zap.Error(err))
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation)
}

// SendStoreError maps a store error onto the matching HTTP status and error code.
func (api *API) SendStoreError(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, internalErrors.ErrNotFound):
		SendNotFoundError(c, err.Error())
	case errors.Is(err, internalErrors.ErrAlreadyExists):
		SendError(c, http.StatusConflict, ErrorCodeAlreadyExists, err.Error())
	case errors.Is(err, internalErrors.ErrInvalidInput):
		var validationErr *internalErrors.ValidationError
		if errors.As(err, &validationErr) {
			SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, validationErr.Message,
				ErrorDetail{Field: validationErr.Field, Message: validationErr.Message, Code: "VALIDATION_ERROR"})
			return
		}
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
	case errors.Is(err, internalErrors.ErrConflict):
		SendError(c, http.StatusBadRequest, ErrorCodeConflict, err.Error())
	case errors.Is(err, internalErrors.ErrForbidden):
		SendError(c, http.StatusForbidden, ErrorCodeForbidden, err.Error())
	case errors.Is(err, internalErrors.ErrUnauthorized):
		SendError(c, http.StatusUnauthorized, ErrorCodeUnauthorized, err.Error())
	default:
		api.SendInternalError(c, operation, err)
	}
}

// SendSuccess writes the standard success envelope. An empty message is omitted.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(statusCode, body)
}
