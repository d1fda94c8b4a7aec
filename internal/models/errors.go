package models

import "fmt"

// ConfigurationError indicates a missing or invalid credential/setting.
// It is raised before any network call is attempted and is not retryable.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is not set", e.Setting)
}

// UpstreamRequestError carries a non-success HTTP status returned by the
// places endpoint.
type UpstreamRequestError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamRequestError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("upstream request failed with status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("upstream request failed with status %d", e.StatusCode)
}

// BackendUnavailableError indicates the completion backend is overloaded
// or unreachable. Handlers map it to a distinguishable "try again shortly"
// response rather than a generic failure.
type BackendUnavailableError struct {
	Provider string
	Err      error
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("%s backend unavailable: %v", e.Provider, e.Err)
}

func (e *BackendUnavailableError) Unwrap() error {
	return e.Err
}

// InvalidImageError indicates a caller-supplied image could not be used:
// malformed data URI, undecodable payload, or over the size limit.
type InvalidImageError struct {
	Reason string
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("invalid image: %s", e.Reason)
}

// SchemaValidationError indicates the completion backend produced output
// that does not conform to the declared output schema.
type SchemaValidationError struct {
	Reason string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("backend output failed schema validation: %s", e.Reason)
}
