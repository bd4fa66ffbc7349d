package catalog

import "fmt"

// CatalogErrorType represents the type of catalog error.
type CatalogErrorType int

const (
	// CatalogFetchFailed indicates the remote catalog could not be fetched.
	CatalogFetchFailed CatalogErrorType = iota
	// CatalogNotFound indicates the requested resource does not exist.
	CatalogNotFound
	// CatalogDecodeFailed indicates the catalog response could not be decoded.
	CatalogDecodeFailed
)

// String returns the string representation of the error type.
func (t CatalogErrorType) String() string {
	switch t {
	case CatalogFetchFailed:
		return "FetchFailed"
	case CatalogNotFound:
		return "NotFound"
	case CatalogDecodeFailed:
		return "DecodeFailed"
	default:
		return "Unknown"
	}
}

// CatalogError represents a remote catalog error. Catalog failures are fatal
// to the flow that needed the catalog; there is no retry policy here.
type CatalogError struct {
	// Type is the error type classification.
	Type CatalogErrorType
	// Message is the human-readable error message.
	Message string
	// URL is the request URL that caused the error.
	URL string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog error [%s] for URL '%s': %s (caused by: %v)",
			e.Type.String(), e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog error [%s] for URL '%s': %s", e.Type.String(), e.URL, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// newCatalogError creates a new CatalogError.
func newCatalogError(typ CatalogErrorType, url, message string, cause error) *CatalogError {
	return &CatalogError{
		Type:    typ,
		Message: message,
		URL:     url,
		Cause:   cause,
	}
}
