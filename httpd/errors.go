package httpd

import (
	"errors"

	"dqx0.com/go/littlehttpd/httpd/internal/http1"
)

var (
	ErrServerClosed     = errors.New("httpd: server closed")
	ErrNoRequestLine    = errors.New("httpd: no request line")
	ErrLineTooLong      = http1.ErrLineTooLong
	ErrBadRequestLine   = http1.ErrBadRequestLine
	ErrBadHeaderField   = http1.ErrBadHeaderField
	ErrBadContentLength = errors.New("httpd: bad Content-Length value")
	ErrBodyTooLarge     = errors.New("httpd: request body too long")
	ErrShortBody        = errors.New("httpd: failed to read request body")
)

// ParseError reports which token of the request line, or which header
// line, could not be parsed. It unwraps to ErrBadRequestLine or
// ErrBadHeaderField.
type ParseError = http1.ParseError
