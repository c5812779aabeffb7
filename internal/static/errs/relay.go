package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrRelay          = errors.New("relay failed")
)

var (
	ErrInvalidEndpointURL    = errors.New("invalid endpoint url")
	ErrEndpointNotConfigured = errors.New("endpoint url is not configured")
	ErrProblemNotFound       = errors.New("problem not found")
	ErrInvalidAnswer         = errors.New("invalid answer")
)

// ExternalStatusError is returned when the external endpoint answers with a non-success status
type ExternalStatusError struct {
	StatusCode int
}

func (e *ExternalStatusError) Error() string {
	return fmt.Sprintf("external endpoint responded with status %d", e.StatusCode)
}
