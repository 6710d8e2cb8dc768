package errors

import (
	"net/http"

	"usersvc/internal/errors"
)

// Kind classifies a failure independently of its concrete error value.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindUnauthorized
	KindValidation
	KindConflict
	KindInfrastructure
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation_error"
	case KindConflict:
		return "conflict"
	case KindInfrastructure:
		return "infrastructure_error"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// HTTPCode maps a kind to the status code the HTTP boundary answers with.
func (k Kind) HTTPCode() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

// Unwrap exposes the underlying cause attached with WithCause.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// Is matches any BaseError derived from the same predefined error, so
// errors.Is(ErrInfrastructure.WithCause(err), ErrInfrastructure) holds.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.kind == t.kind && e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.kind.HTTPCode()
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithCause attaches the fault that produced this error. The cause is kept for
// logging and errors.Is/As; it is never rendered to clients.
func (e *BaseError) WithCause(cause error) *BaseError {
	clone := *e
	clone.cause = cause

	return &clone
}

// KindOf resolves the kind of err through any wrapping. Errors that carry no
// kind are infrastructure faults.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInfrastructure
}

// Predefined error types
var (
	// Credential and authentication errors
	ErrCredentialsNotFound = NewBaseError(
		KindNotFound,
		"CREDENTIALS_NOT_FOUND",
		"credentials not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		KindUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		KindConflict,
		"EMAIL_ALREADY_IN_USE",
		"email is already in use",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		KindUnauthorized,
		"TOKEN_INVALID",
		"invalid or expired access token",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		KindValidation,
		"PASSWORD_STRENGTH",
		"password is too weak",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUsersNotFound = NewBaseError(
		KindNotFound,
		"USERS_NOT_FOUND",
		"no users found",
		"",
	)

	// Department errors
	ErrDepartmentNotFound = NewBaseError(
		KindNotFound,
		"DEPARTMENT_NOT_FOUND",
		"department not found",
		"",
	)

	ErrDepartmentsNotFound = NewBaseError(
		KindNotFound,
		"DEPARTMENTS_NOT_FOUND",
		"no departments found",
		"",
	)

	ErrDepartmentAlreadyExists = NewBaseError(
		KindConflict,
		"DEPARTMENT_ALREADY_EXISTS",
		"a department with this name already exists",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInfrastructure = NewBaseError(
		KindInfrastructure,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// Infrastructure wraps a collaborator fault with a stack trace and classifies
// it as an infrastructure failure.
func Infrastructure(err error, message string) *BaseError {
	return ErrInfrastructure.WithCause(errors.Wrap(err, message))
}

// Validation reports rejected input. The validator message becomes the
// client-facing details.
func Validation(err error) *BaseError {
	return ErrValidationFailed.WithDetails(err.Error()).WithCause(err)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) Kind() Kind {
	return KindInfrastructure
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
