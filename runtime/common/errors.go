package common

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	q "github.com/teamkeel/graphgate/query"
)

const (
	ErrInvalidInput       = "BAD_USER_INPUT"
	ErrInvalidCursor      = "INVALID_CURSOR"
	ErrBackendUnavailable = "BACKEND_UNAVAILABLE"
	ErrBackendError       = "BACKEND_ERROR"
	ErrInternal           = "INTERNAL_SERVER_ERROR"
)

// ErrUnavailable is wrapped by loaders when the backend could
// not be reached or answered with a server error.
var ErrUnavailable = errors.New("backend unavailable")

// BackendError is a failed backend call that produced a response.
type BackendError struct {
	Status  int
	Message string
	cause   error
}

func NewBackendError(status int, message string) *BackendError {
	be := &BackendError{
		Status:  status,
		Message: message,
	}
	if status >= http.StatusInternalServerError {
		be.cause = ErrUnavailable
	}
	return be
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend responded with status %d: %s", e.Status, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.cause
}

// RuntimeError is an error reported to the client with a stable code.
type RuntimeError struct {
	Code    string
	Message string
}

func (r RuntimeError) Error() string {
	return r.Message
}

// Extensions is picked up by the graphql executor and reported under
// "extensions" in the response.
func (r RuntimeError) Extensions() map[string]any {
	return map[string]any{
		"code": r.Code,
	}
}

// NewRuntimeError maps errors raised while resolving a connection to the
// error the client sees. Errors that are already RuntimeErrors are returned
// as they are.
func NewRuntimeError(err error) RuntimeError {
	var runtimeErr RuntimeError
	if errors.As(err, &runtimeErr) {
		return runtimeErr
	}

	var backendErr *BackendError
	switch {
	case errors.Is(err, q.ErrInvalidCursor):
		return RuntimeError{Code: ErrInvalidCursor, Message: err.Error()}
	case errors.Is(err, q.ErrInvalidArgument):
		return RuntimeError{Code: ErrInvalidInput, Message: err.Error()}
	case errors.Is(err, ErrUnavailable):
		return RuntimeError{Code: ErrBackendUnavailable, Message: "backend unavailable"}
	case errors.As(err, &backendErr):
		return RuntimeError{Code: ErrBackendError, Message: backendErr.Error()}
	default:
		return RuntimeError{Code: ErrInternal, Message: "error executing request"}
	}
}
