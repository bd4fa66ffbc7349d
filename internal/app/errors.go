package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// AuthFailed indicates cloud authentication failed.
	AuthFailed AppErrorType = iota
	// CatalogFailed indicates the example catalog could not be fetched.
	CatalogFailed
	// TemplateFailed indicates the environment template could not be
	// fetched or parsed.
	TemplateFailed
	// ProjectSetupFailed indicates cloud project resolution failed.
	ProjectSetupFailed
	// RegionSetupFailed indicates region resolution failed.
	RegionSetupFailed
	// WizardFailed indicates the configuration wizard failed.
	WizardFailed
	// CloneFailed indicates the example repository could not be cloned.
	CloneFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}
