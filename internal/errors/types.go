package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeSecurity   ErrorType = "security"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// RefError is a structured error type with context.
type RefError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Entry       string
	FilePath    string
	Recoverable bool
}

// Error implements the error interface.
func (e *RefError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Entry != "" {
		parts = append(parts, "entry:"+e.Entry)
	}

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *RefError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *RefError) Is(target error) bool {
	var t *RefError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *RefError) WithContext(key string, value interface{}) *RefError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithEntry names the catalog entry the error concerns.
func (e *RefError) WithEntry(entry string) *RefError {
	e.Entry = entry

	return e
}

// WithFile adds file path information.
func (e *RefError) WithFile(path string) *RefError {
	e.FilePath = path

	return e
}

// HTTPStatus maps the error type to a response status.
func (e *RefError) HTTPStatus() int {
	switch e.Type {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeNotFound:
		return http.StatusNotFound
	case ErrorTypeSecurity:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *RefError {
	return &RefError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewNotFoundError creates a lookup error.
func NewNotFoundError(code, message string) *RefError {
	return &RefError{
		Type:        ErrorTypeNotFound,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewSecurityError creates a security error.
func NewSecurityError(code, message string) *RefError {
	return &RefError{
		Type:    ErrorTypeSecurity,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *RefError {
	return &RefError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *RefError {
	return &RefError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *RefError {
	return &RefError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var re *RefError
	if errors.As(err, &re) {
		return re.Recoverable
	}

	return false
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	var re *RefError
	if errors.As(err, &re) {
		return re.Type == ErrorTypeNotFound
	}

	return false
}

// GetErrorCode returns the code of the first RefError in err's chain, or "".
func GetErrorCode(err error) string {
	var re *RefError
	if errors.As(err, &re) {
		return re.Code
	}

	return ""
}

// ErrorHandler provides centralized error handling.
type ErrorHandler struct {
	logger Logger
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs an error at a level that fits its type.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var re *RefError
	if !errors.As(err, &re) {
		h.logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	switch re.Type {
	case ErrorTypeValidation, ErrorTypeNotFound:
		h.logger.Warn(ctx, err, "Request rejected",
			"type", re.Type,
			"code", re.Code,
			"entry", re.Entry)
	default:
		h.logger.Error(ctx, err, "Error occurred",
			"type", re.Type,
			"code", re.Code,
			"entry", re.Entry)
	}
}

// Common error codes.
const (
	ErrCodeInvalidPath   = "ERR_INVALID_PATH"
	ErrCodePathTraversal = "ERR_PATH_TRAVERSAL"
	ErrCodeInvalidOrigin = "ERR_INVALID_ORIGIN"
	ErrCodeUnknownKind   = "ERR_UNKNOWN_KIND"
	ErrCodeEntryNotFound = "ERR_ENTRY_NOT_FOUND"
	ErrCodeConfigInvalid = "ERR_CONFIG_INVALID"
	ErrCodeCatalogLoad   = "ERR_CATALOG_LOAD"
	ErrCodeExportFailed  = "ERR_EXPORT_FAILED"
	ErrCodeInternalError = "ERR_INTERNAL"
	ErrCodeMissingParam  = "ERR_MISSING_PARAMETER"
	ErrCodeRateLimited   = "ERR_RATE_LIMITED"
	ErrCodeRouteNotFound = "ERR_NOT_FOUND"
	ErrCodeInputTooLarge = "ERR_INPUT_TOO_LARGE"
)

// ErrInvalidPath creates a path validation error.
func ErrInvalidPath(path string) *RefError {
	return NewValidationError(ErrCodeInvalidPath, "invalid path: "+path)
}

// ErrPathTraversal creates a path traversal security error.
func ErrPathTraversal(path string) *RefError {
	return NewSecurityError(ErrCodePathTraversal, "path traversal attempt: "+path)
}

// ErrInvalidOrigin creates an invalid origin security error.
func ErrInvalidOrigin(origin string) *RefError {
	return NewSecurityError(ErrCodeInvalidOrigin, "invalid origin: "+origin)
}

// ErrUnknownKind is returned for a table name other than html or css.
func ErrUnknownKind(kind string) *RefError {
	return NewValidationError(ErrCodeUnknownKind, "unknown kind: "+kind).
		WithContext("kind", kind)
}

// ErrEntryNotFound creates an entry not found error.
func ErrEntryNotFound(kind, name string) *RefError {
	return NewNotFoundError(ErrCodeEntryNotFound, fmt.Sprintf("no %s entry named %q", kind, name)).
		WithEntry(name).
		WithContext("kind", kind)
}

// ErrMissingParam reports a required query parameter that was empty.
func ErrMissingParam(name string) *RefError {
	return NewValidationError(ErrCodeMissingParam, "missing parameter: "+name)
}
