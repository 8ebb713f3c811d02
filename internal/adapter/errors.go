package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. They are
// returned wrapped together with the response body.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// Push channel construction errors. Both are recoverable: the sync client
// falls back to polling when it sees them.
var (
	ErrMalformedURL     = errors.New("malformed push channel url")
	ErrDisallowedScheme = errors.New("disallowed push channel scheme")
	ErrChannelClosed    = errors.New("push channel closed")
)
