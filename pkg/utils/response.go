package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes carried in every error body.
const (
	CodeValidation           = "validation"
	CodeNotFound             = "not_found"
	CodeConflict             = "conflict"
	CodeUnauthorized         = "unauthorized"
	CodeUpstreamUnauthorized = "upstream_unauthorized"
	CodeUpstreamUnavailable  = "upstream_unavailable"
	CodeStorage              = "storage"
)

// ErrorResponse represents a standard error response format
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// SuccessResponse represents a standard success response format
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationErrorResponse represents a validation error with field-specific details
type ValidationErrorResponse struct {
	Error  string                 `json:"error"`
	Code   string                 `json:"code"`
	Fields map[string]interface{} `json:"fields,omitempty"`
}

// ErrorJSON sends a JSON error response with the specified HTTP status code and code field.
func ErrorJSON(ctx *gin.Context, statusCode int, code string, message string) {
	ctx.JSON(statusCode, ErrorResponse{Error: message, Code: code})
}

// ValidationErrorJSON sends a validation error response with field details
func ValidationErrorJSON(ctx *gin.Context, message string, fields map[string]interface{}) {
	ctx.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  message,
		Code:   CodeValidation,
		Fields: fields,
	})
}

// SuccessJSON sends a JSON success response with optional data
func SuccessJSON(ctx *gin.Context, statusCode int, message string, data interface{}) {
	ctx.JSON(statusCode, SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// BadRequestJSON sends a bad request error response
func BadRequestJSON(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: CodeValidation})
}

// NotFoundJSON sends a not found error response
func NotFoundJSON(ctx *gin.Context, resource string) {
	ctx.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found", Code: CodeNotFound})
}

// ConflictJSON sends a conflict error response
func ConflictJSON(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusConflict, ErrorResponse{Error: message, Code: CodeConflict})
}

// UnauthorizedJSON sends an unauthorized error response
func UnauthorizedJSON(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized access", Code: CodeUnauthorized})
}

// InternalErrorJSON sends an internal server error response.
// The underlying error is logged upstream, not exposed to clients.
func InternalErrorJSON(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Code: CodeStorage})
}
