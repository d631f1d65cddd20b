package model

import "errors"

// Process exit codes. Anything that is not a recognized error kind exits
// with ExitFailure.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitNetwork = 3
	ExitRemote  = 4
)

// UsageError reports missing or invalid user input. It is raised before any
// network call is attempted.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NetworkError reports a transport-level failure reaching the weather provider.
type NetworkError struct {
	Message string
	Cause   error
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// RemoteError reports a non-success answer from the weather provider, such as
// an unknown city, an invalid API key, or an unusable payload.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// ExitCode maps an error to the process exit code for its kind.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}

	var networkErr *NetworkError
	if errors.As(err, &networkErr) {
		return ExitNetwork
	}

	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return ExitRemote
	}

	return ExitFailure
}
