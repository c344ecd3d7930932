package jisho

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned before any request is made when an input fails validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRemoteRequestFailed is returned when the API answers with a non-200 status.
	ErrRemoteRequestFailed = errors.New("remote request failed")
	// ErrUnexpectedShape is returned when a response body lacks structure the normalizer requires.
	ErrUnexpectedShape = errors.New("unexpected response shape")
	// ErrUnsupported is returned by lookups the JSON API cannot serve.
	ErrUnsupported = errors.New("unsupported by the Jisho API")
)

// RequestError carries the status code and the literal query of a failed request.
type RequestError struct {
	StatusCode int
	Query      string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("HTTP %d: couldn't get results for query '%s'. Check if API server is available and the query correct",
		e.StatusCode, e.Query)
}

func (e *RequestError) Unwrap() error {
	return ErrRemoteRequestFailed
}
