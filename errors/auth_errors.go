// errors/auth_errors.go
package errors

import "errors"

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInactiveUser      = errors.New("inactive user")
	ErrInternalServer    = errors.New("internal server error")
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)
