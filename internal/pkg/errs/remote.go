package errs

import "errors"

var (
	// ErrNotAuthenticated is returned before any network call when there is no signed-in session.
	ErrNotAuthenticated = errors.New("please attempt to sign in first")

	ErrRemoteRejected = errors.New("remote rejected the request")
	ErrTransport      = errors.New("remote is unreachable")
)

// RemoteError carries the first error string reported by the GraphQL API.
// Error returns that string verbatim so it can be shown to the user as is.
type RemoteError struct {
	Operation string
	Message   string
}

func NewRemoteError(operation, message string) *RemoteError {
	return &RemoteError{Operation: operation, Message: message}
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return ErrRemoteRejected
}

// TransportError wraps a failure that happened before a GraphQL response was decoded.
type TransportError struct {
	Operation string
	Cause     error
}

func NewTransportError(operation string, cause error) *TransportError {
	return &TransportError{Operation: operation, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause == nil {
		return ErrTransport.Error()
	}
	return e.Cause.Error()
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Cause}
}
