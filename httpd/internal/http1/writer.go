package http1

import (
	"bufio"
	"fmt"
	"strings"
	"time"
)

// TimeFormat is the RFC 1123 layout used for the Date header, always in GMT.
const TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

func StatusText(code int) string {
	switch code {
	case 200:
		return "OK"
	case 404:
		return "Not Found"
	case 405:
		return "Method Not Allowed"
	case 501:
		return "Not Implemented"
	default:
		return ""
	}
}

// StartResponse writes the status line followed by the fields every
// response carries: Date, Server and Connection: close.
func StartResponse(bw *bufio.Writer, minor, status int, server string, now time.Time) error {
	if _, err := fmt.Fprintf(bw, "HTTP/1.%d %d %s\r\n", minor, status, StatusText(status)); err != nil {
		return err
	}
	if err := WriteField(bw, "Date", now.UTC().Format(TimeFormat)); err != nil {
		return err
	}
	if err := WriteField(bw, "Server", server); err != nil {
		return err
	}
	return WriteField(bw, "Connection", "close")
}

func WriteField(bw *bufio.Writer, name, value string) error {
	_, err := fmt.Fprintf(bw, "%s: %s\r\n", name, sanitizeHeaderValue(value))
	return err
}

// EndFields terminates the header section.
func EndFields(bw *bufio.Writer) error {
	_, err := bw.WriteString("\r\n")
	return err
}

// ErrorPage renders the HTML document sent with 404, 405 and 501.
// message is inserted verbatim and must already be escaped.
func ErrorPage(status int, message string) []byte {
	title := fmt.Sprintf("%d %s", status, StatusText(status))
	var b strings.Builder
	b.WriteString("<html>\r\n")
	b.WriteString("<head><title>" + title + "</title></head>\r\n")
	b.WriteString("<body>\r\n")
	b.WriteString("<p>" + message + "</p>\r\n")
	b.WriteString("</body>\r\n")
	b.WriteString("</html>\r\n")
	return []byte(b.String())
}

func sanitizeHeaderValue(v string) string {
	if v == "" {
		return v
	}
	// Remove CR/LF and other control chars except HTAB
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '\r' || c == '\n' || c == 0x7f {
			continue
		}
		if c < 0x20 && c != '\t' {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
