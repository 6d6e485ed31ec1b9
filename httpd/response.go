package httpd

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"os"
	"strconv"

	"dqx0.com/go/littlehttpd/httpd/internal/http1"
)

const (
	StatusOK               = 200
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
	StatusNotImplemented   = 501
)

const (
	ServerName         = "LittleHTTP"
	ServerVersion      = "1.0"
	DefaultBlockSize   = 1024
	DefaultContentType = "text/plain"
)

// respond writes the single response for req to out and returns its status.
// An error means the response could not be completed.
func (s *Server) respond(out io.Writer, req *Request) (int, error) {
	bw := bufio.NewWriter(out)
	switch req.Method {
	case "GET", "HEAD":
		return s.fileResponse(out, bw, req)
	case "POST":
		msg := fmt.Sprintf("The request method %s is not allowed", html.EscapeString(req.Method))
		return StatusMethodNotAllowed, s.errorResponse(bw, req, StatusMethodNotAllowed, msg, HeaderField{"Allow", "GET, HEAD"})
	default:
		msg := fmt.Sprintf("The request method %s is not implemented", html.EscapeString(req.Method))
		return StatusNotImplemented, s.errorResponse(bw, req, StatusNotImplemented, msg)
	}
}

func (s *Server) fileResponse(out io.Writer, bw *bufio.Writer, req *Request) (int, error) {
	info := s.resolve(req.Path)
	if !info.OK {
		return StatusNotFound, s.errorResponse(bw, req, StatusNotFound, "File not found")
	}
	if err := s.startResponse(bw, req, StatusOK); err != nil {
		return StatusOK, err
	}
	if err := http1.WriteField(bw, "Content-Length", strconv.FormatInt(info.Size, 10)); err != nil {
		return StatusOK, err
	}
	if err := http1.WriteField(bw, "Content-Type", s.contentType()); err != nil {
		return StatusOK, err
	}
	if err := http1.EndFields(bw); err != nil {
		return StatusOK, err
	}
	if err := bw.Flush(); err != nil {
		return StatusOK, fmt.Errorf("failed to write to socket: %w", err)
	}
	if req.Method == "HEAD" {
		return StatusOK, nil
	}
	return StatusOK, s.sendFile(out, info)
}

// sendFile copies the file in BlockSize blocks straight to out, never more
// than the size announced in Content-Length.
func (s *Server) sendFile(out io.Writer, info *FileInfo) error {
	f, err := os.Open(info.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", info.Path, err)
	}
	defer f.Close()
	src := io.LimitReader(f, info.Size)
	buf := make([]byte, s.blockSize())
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				return fmt.Errorf("failed to write to socket: %w", werr)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", info.Path, err)
		}
	}
}

// errorResponse sends an HTML page for status. HEAD gets the same header
// fields and no body.
func (s *Server) errorResponse(bw *bufio.Writer, req *Request, status int, message string, extra ...HeaderField) error {
	page := http1.ErrorPage(status, message)
	if err := s.startResponse(bw, req, status); err != nil {
		return err
	}
	for _, f := range extra {
		if err := http1.WriteField(bw, f.Name, f.Value); err != nil {
			return err
		}
	}
	if err := http1.WriteField(bw, "Content-Type", "text/html"); err != nil {
		return err
	}
	if err := http1.WriteField(bw, "Content-Length", strconv.Itoa(len(page))); err != nil {
		return err
	}
	if err := http1.EndFields(bw); err != nil {
		return err
	}
	if req.Method != "HEAD" {
		if _, err := bw.Write(page); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write to socket: %w", err)
	}
	return nil
}

func (s *Server) startResponse(bw *bufio.Writer, req *Request, status int) error {
	return http1.StartResponse(bw, req.ProtocolMinorVersion, status, ServerName+"/"+ServerVersion, s.now())
}

func (s *Server) resolve(urlpath string) *FileInfo {
	if s.Confine {
		return ResolveConfined(s.DocRoot, urlpath)
	}
	return Resolve(s.DocRoot, urlpath)
}
