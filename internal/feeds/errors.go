package feeds

import "fmt"

// ConfigError reports a missing API credential. It is returned before any
// network call is attempted.
type ConfigError struct {
	Missing string
}

func (e *ConfigError) Error() string {
	return "missing API credential: " + e.Missing
}

// RemoteServiceError reports a non-success HTTP status or a malformed
// payload from an external feed. Callers degrade it to an empty result at
// the composition boundary rather than propagating it.
type RemoteServiceError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s feed: malformed payload: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s feed returned status %d", e.Service, e.StatusCode)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}
