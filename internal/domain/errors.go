package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound                 = errors.New("resource not found")
	ErrUnauthorized             = errors.New("unauthorized")
	ErrForbidden                = errors.New("forbidden")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrUserInactive             = errors.New("user is inactive")
	ErrUnknownReportType        = errors.New("unknown report type")
	ErrOwnerIdentityRequired    = errors.New("owner identity required")
	ErrDuplicateEmail           = errors.New("email already exists")
	ErrDuplicateSerialNo        = errors.New("serial number already exists")
	ErrDuplicateAcknowledgement = errors.New("acknowledgement number already exists")
	ErrUnsupportedFileType      = errors.New("unsupported file type")
	ErrFileTooLarge             = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed             = errors.New("file upload to storage failed")
	ErrResetTokenInvalid        = errors.New("password reset token is invalid or expired")
)

// ValidationError reports a field-level contract violation on a complaint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
