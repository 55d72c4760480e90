package domain

import "fmt"

// ConfigurationError reports settings the application cannot run with, such as an
// unknown runtime or incomplete registry credentials.
type ConfigurationError struct {
	Message string
}

func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ProtocolViolationError reports a successful registry response that lacks data the
// distribution API requires.
type ProtocolViolationError struct {
	MediaType string
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("missing digest in manifest %s response", e.MediaType)
}

// UpstreamError carries an unexpected status returned by the registry
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("registry responded with %d: %s", e.StatusCode, e.Message)
}
