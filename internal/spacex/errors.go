package spacex

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a launch query failed.
type ErrorKind int

const (
	// KindFailure covers malformed bodies and requests that could not be built.
	KindFailure ErrorKind = iota
	// KindNetwork means no response was received.
	KindNetwork
	// KindHTTPStatus means the API answered with a non-2xx status.
	KindHTTPStatus
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	default:
		return "failure"
	}
}

// FetchError is returned by every failed Client call.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	case KindNetwork:
		if e.Err != nil {
			return fmt.Sprintf("network error: %v", e.Err)
		}
		return "network error"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "request failed"
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf reports the ErrorKind of err, or KindFailure when err is not a FetchError.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindFailure
}
