package utils

import (
	"fmt"

	"github.com/mkellner/spmirror/internal/types"
)

// SchemaVersion identifies the JSON output schema
const SchemaVersion = "1.0"

// Exit codes
const (
	ExitSuccess = 0
	// Auth errors (10-19)
	ExitAuthRequired = 10
	ExitAuthExpired  = 11
	// Remote operation errors (20-29)
	ExitListingFailed = 20
	ExitFetchFailed   = 21
	ExitNotFound      = 22
	// Network errors (30-39)
	ExitNetworkError = 30
	ExitTimeout      = 31
	// Validation errors (40-49)
	ExitInvalidArgument = 40
	ExitConfigInvalid   = 41
	// Directory service errors (50-59)
	ExitDirectoryError = 50
	// Unknown
	ExitUnknown = 99
)

// Error codes (tool-owned, stable)
const (
	ErrCodeAuthRequired    = "AUTH_REQUIRED"
	ErrCodeAuthExpired     = "AUTH_EXPIRED"
	ErrCodeListingFailed   = "LISTING_FAILED"
	ErrCodeFetchFailed     = "FETCH_FAILED"
	ErrCodePathTooLong     = "PATH_TOO_LONG"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodePermissionDenied = "PERMISSION_DENIED"
	ErrCodeNetworkError    = "NETWORK_ERROR"
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeConfigInvalid   = "CONFIG_INVALID"
	ErrCodeDirectoryError  = "DIRECTORY_ERROR"
	ErrCodeUnknown         = "UNKNOWN"
)

// CLIErrorBuilder helps construct CLIError instances
type CLIErrorBuilder struct {
	err types.CLIError
}

// NewCLIError creates a new error builder
func NewCLIError(code, message string) *CLIErrorBuilder {
	return &CLIErrorBuilder{
		err: types.CLIError{
			Code:    code,
			Message: message,
		},
	}
}

func (b *CLIErrorBuilder) WithHTTPStatus(status int) *CLIErrorBuilder {
	b.err.HTTPStatus = status
	return b
}

func (b *CLIErrorBuilder) WithRetryable(retryable bool) *CLIErrorBuilder {
	b.err.Retryable = retryable
	return b
}

func (b *CLIErrorBuilder) WithContext(key string, value interface{}) *CLIErrorBuilder {
	if b.err.Context == nil {
		b.err.Context = make(map[string]interface{})
	}
	b.err.Context[key] = value
	return b
}

func (b *CLIErrorBuilder) Build() types.CLIError {
	return b.err
}

// GetExitCode returns the exit code for an error code
func GetExitCode(errorCode string) int {
	mapping := map[string]int{
		ErrCodeAuthRequired:    ExitAuthRequired,
		ErrCodeAuthExpired:     ExitAuthExpired,
		ErrCodeListingFailed:   ExitListingFailed,
		ErrCodeFetchFailed:     ExitFetchFailed,
		ErrCodeNotFound:        ExitNotFound,
		ErrCodePermissionDenied: ExitFetchFailed,
		ErrCodeNetworkError:    ExitNetworkError,
		ErrCodeTimeout:         ExitTimeout,
		ErrCodeInvalidArgument: ExitInvalidArgument,
		ErrCodeConfigInvalid:   ExitConfigInvalid,
		ErrCodeDirectoryError:  ExitDirectoryError,
	}
	if code, ok := mapping[errorCode]; ok {
		return code
	}
	return ExitUnknown
}

// AppError is a custom error type that carries CLI error info
type AppError struct {
	CLIError types.CLIError
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.CLIError.Code, e.CLIError.Message)
}

// NewAppError creates an AppError from a CLIError
func NewAppError(cliErr types.CLIError) *AppError {
	return &AppError{CLIError: cliErr}
}
