package http1

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrLineTooLong    = errors.New("http1: line too long")
	ErrBadRequestLine = errors.New("http1: parse error on request line")
	ErrBadHeaderField = errors.New("http1: parse error on request header field")
)

// VersionPrefix is the protocol token every request line must carry.
const VersionPrefix = "HTTP/1."

// ParseError reports a malformed request or header line.
// Token is 1, 2 or 3 for the request-line token that failed and 0 for a header line.
type ParseError struct {
	Token int
	Line  string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token > 0 {
		return fmt.Sprintf("parse error on request line (%d): %s", e.Token, e.Line)
	}
	return fmt.Sprintf("parse error on request header field: %s", e.Line)
}

func (e *ParseError) Unwrap() error { return e.Err }

type Reader struct {
	BR           *bufio.Reader
	MaxLineBytes int
}

// ReadLine reads up to and including the next LF and returns the line
// without its terminator. A final unterminated line is returned as is;
// io.EOF is only reported when nothing was read.
func (r *Reader) ReadLine() (string, error) {
	var sb strings.Builder
	for {
		b, err := r.BR.ReadByte()
		if err != nil {
			if err == io.EOF && sb.Len() > 0 {
				break
			}
			return "", err
		}
		if b == '\n' {
			break
		}
		sb.WriteByte(b)
		if r.MaxLineBytes > 0 && sb.Len() > r.MaxLineBytes {
			return "", ErrLineTooLong
		}
	}
	return strings.TrimSuffix(sb.String(), "\r"), nil
}

// ParseRequestLine splits "METHOD SP PATH SP HTTP/1.N". The method is
// returned uppercased and the path untouched.
func ParseRequestLine(line string) (method, path string, minor int, err error) {
	m, rest, ok := strings.Cut(line, " ")
	if !ok || m == "" {
		return "", "", 0, &ParseError{Token: 1, Line: line, Err: ErrBadRequestLine}
	}
	path, proto, ok := strings.Cut(rest, " ")
	if !ok {
		return "", "", 0, &ParseError{Token: 2, Line: line, Err: ErrBadRequestLine}
	}
	if len(proto) < len(VersionPrefix) || !strings.EqualFold(proto[:len(VersionPrefix)], VersionPrefix) {
		return "", "", 0, &ParseError{Token: 3, Line: line, Err: ErrBadRequestLine}
	}
	return strings.ToUpper(m), path, leadingInt(proto[len(VersionPrefix):]), nil
}

// ParseHeaderLine splits "Name: value". The name is kept verbatim; leading
// spaces and tabs are stripped from the value.
func ParseHeaderLine(line string) (name, value string, err error) {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", &ParseError{Line: line, Err: ErrBadHeaderField}
	}
	return name, strings.TrimLeft(value, " \t"), nil
}

// leadingInt parses the decimal digits at the start of s, 0 if there are none.
func leadingInt(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n > 1<<20 {
			break
		}
	}
	return n
}
