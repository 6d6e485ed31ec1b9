package httpd

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"dqx0.com/go/littlehttpd/httpd/internal/http1"
)

const (
	DefaultMaxLineBytes = 4096
	DefaultMaxBodyBytes = 1024 * 1024
)

// Request is one parsed HTTP/1.x request.
type Request struct {
	Method               string // uppercased
	Path                 string // request-target as received
	ProtocolMinorVersion int
	Header               Header
	// Body is nil unless a non-zero Content-Length was sent.
	Body          []byte
	ContentLength int64
}

// Limits bounds what ReadRequest accepts. Zero values select the defaults.
type Limits struct {
	MaxLineBytes int
	MaxBodyBytes int64
}

func (l Limits) lineBytes() int {
	if l.MaxLineBytes <= 0 {
		return DefaultMaxLineBytes
	}
	return l.MaxLineBytes
}

func (l Limits) bodyBytes() int64 {
	if l.MaxBodyBytes <= 0 {
		return DefaultMaxBodyBytes
	}
	return l.MaxBodyBytes
}

// ReadRequest reads the request line, the header section and, when
// Content-Length asks for it, the body.
func ReadRequest(br *bufio.Reader, lim Limits) (*Request, error) {
	rr := &http1.Reader{BR: br, MaxLineBytes: lim.lineBytes()}
	line, err := rr.ReadLine()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNoRequestLine
		}
		return nil, fmt.Errorf("no request line: %w", err)
	}
	method, path, minor, err := http1.ParseRequestLine(line)
	if err != nil {
		return nil, err
	}
	req := &Request{Method: method, Path: path, ProtocolMinorVersion: minor}

	for {
		f, ok, err := readHeaderField(rr)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		req.Header = append(req.Header, f)
	}
	slices.Reverse(req.Header)

	n, err := contentLength(req.Header)
	if err != nil {
		return nil, err
	}
	req.ContentLength = n
	if n == 0 {
		return req, nil
	}
	if n > lim.bodyBytes() {
		return nil, fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, n)
	}
	req.Body = make([]byte, n)
	if _, err := io.ReadFull(br, req.Body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShortBody, err)
	}
	return req, nil
}

// readHeaderField returns ok=false at the empty line ending the header section.
func readHeaderField(rr *http1.Reader) (HeaderField, bool, error) {
	line, err := rr.ReadLine()
	if err != nil {
		return HeaderField{}, false, fmt.Errorf("failed to read request header field: %w", err)
	}
	if line == "" {
		return HeaderField{}, false, nil
	}
	name, value, err := http1.ParseHeaderLine(line)
	if err != nil {
		return HeaderField{}, false, err
	}
	return HeaderField{Name: name, Value: value}, true, nil
}

func contentLength(h Header) (int64, error) {
	v, ok := h.Lookup("Content-Length")
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadContentLength, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative Content-Length value %d", ErrBadContentLength, n)
	}
	return n, nil
}
