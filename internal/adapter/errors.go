package adapter

import "errors"

// ErrRequestFailed is matched by every error the adapter returns.
var ErrRequestFailed = errors.New("request failed")

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrMalformedResponse   = errors.New("malformed response")
)
