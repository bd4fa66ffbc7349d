package template

import "fmt"

// ParseErrorType represents the type of template parsing error.
type ParseErrorType int

const (
	// MalformedDeclaration indicates a non-blank, non-comment line with no '='.
	MalformedDeclaration ParseErrorType = iota
	// EmptyName indicates an assignment line with nothing before '='.
	EmptyName
)

// String returns the string representation of the error type.
func (t ParseErrorType) String() string {
	switch t {
	case MalformedDeclaration:
		return "MalformedDeclaration"
	case EmptyName:
		return "EmptyName"
	default:
		return "Unknown"
	}
}

// ParseError represents a template parsing error with line context.
type ParseError struct {
	// Type is the error type.
	Type ParseErrorType
	// Message is the error message.
	Message string
	// Line is the line number where the error occurred (1-indexed).
	Line int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// newParseError creates a ParseError with line context.
func newParseError(typ ParseErrorType, message string, line int) *ParseError {
	return &ParseError{
		Type:    typ,
		Message: message,
		Line:    line,
	}
}
