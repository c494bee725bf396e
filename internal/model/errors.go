package model

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned by an adapter whose provider credentials
// were not configured. No request is made in that case.
var ErrMissingCredentials = errors.New("missing credentials")

// HTTPError wraps a non-success HTTP status from a provider.
type HTTPError struct {
	StatusCode int
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}
