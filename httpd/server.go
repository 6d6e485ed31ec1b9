package httpd

import (
	"bufio"
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"dqx0.com/go/littlehttpd/internal/listen"
	"dqx0.com/go/littlehttpd/internal/obs"
)

type Server struct {
	DocRoot      string
	Logger       obs.Logger
	Meter        obs.Meter
	MaxLineBytes int   // longest request or header line, default 4096
	MaxBodyBytes int64 // largest accepted Content-Length, default 1 MiB
	Backlog      int   // pending connections for ListenAndServe, default 5
	BlockSize    int   // file transfer block, default 1024
	ContentType  string
	// Confine rejects paths that leave DocRoot after cleaning with 404.
	Confine bool
	Now     func() time.Time

	mu         sync.Mutex
	listener   net.Listener
	conns      map[net.Conn]struct{}
	wg         sync.WaitGroup
	inShutdown bool
}

// ListenAndServe listens on port (number or service name, "80" when
// empty) on all IPv4 addresses and calls Serve.
func (s *Server) ListenAndServe(port string) error {
	ln, err := listen.Port(port, s.Backlog)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on l and handles each one in its own
// goroutine. It returns ErrServerClosed after Shutdown, or the first
// accept error that is not worth retrying.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	if s.inShutdown {
		s.mu.Unlock()
		l.Close()
		return ErrServerClosed
	}
	s.listener = l
	s.mu.Unlock()
	defer l.Close()
	for {
		c, err := l.Accept()
		if err != nil {
			if s.shuttingDown() {
				return ErrServerClosed
			}
			if retryableAccept(err) {
				s.logf(obs.Debug, "accept interrupted: %v", err)
				continue
			}
			s.logf(obs.Error, "accept failed: %v", err)
			return err
		}
		if !s.track(c) {
			c.Close()
			return ErrServerClosed
		}
		go s.serveConn(c)
	}
}

// Shutdown closes the listener and waits for connections in flight. When
// ctx ends first the remaining connections are closed and ctx.Err is
// returned.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.inShutdown = true
	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return err
	case <-ctx.Done():
		s.mu.Lock()
		for c := range s.conns {
			c.Close()
		}
		s.mu.Unlock()
		return ctx.Err()
	}
}

func (s *Server) serveConn(c net.Conn) {
	id := genID()
	start := time.Now()
	defer s.reap(c, start)
	defer func() {
		if r := recover(); r != nil {
			s.fail(id, c, "panic: %v", r)
		}
	}()

	req, err := ReadRequest(bufio.NewReader(c), Limits{MaxLineBytes: s.MaxLineBytes, MaxBodyBytes: s.MaxBodyBytes})
	if err != nil {
		s.fail(id, c, "%v", err)
		return
	}
	s.logf(obs.Debug, "conn=%s %s %s HTTP/1.%d", id, req.Method, req.Path, req.ProtocolMinorVersion)
	status, err := s.respond(c, req)
	if err != nil {
		s.fail(id, c, "%v", err)
		return
	}
	s.meter().Counter("httpd_responses_total", 1, obs.Label{Key: "status", Value: strconv.Itoa(status)})
}

func (s *Server) fail(id string, c net.Conn, format string, args ...interface{}) {
	s.logf(obs.Error, "conn=%s remote=%s: "+format, append([]interface{}{id, c.RemoteAddr()}, args...)...)
	s.meter().Counter("httpd_conn_errors_total", 1)
}

func (s *Server) track(c net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inShutdown {
		return false
	}
	if s.conns == nil {
		s.conns = make(map[net.Conn]struct{})
	}
	s.conns[c] = struct{}{}
	s.wg.Add(1)
	return true
}

// reap closes c and forgets it once its goroutine is done.
func (s *Server) reap(c net.Conn, start time.Time) {
	c.Close()
	s.mu.Lock()
	delete(s.conns, c)
	s.mu.Unlock()
	s.meter().Histogram("httpd_conn_seconds", time.Since(start).Seconds())
	s.wg.Done()
}

func (s *Server) shuttingDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inShutdown
}

func (s *Server) logf(level obs.Level, format string, args ...interface{}) {
	if s.Logger == nil {
		return
	}
	s.Logger.Logf(level, format, args...)
}

func (s *Server) meter() obs.Meter {
	if s.Meter == nil {
		return obs.NopMeter{}
	}
	return s.Meter
}

func (s *Server) blockSize() int {
	if s.BlockSize <= 0 {
		return DefaultBlockSize
	}
	return s.BlockSize
}

func (s *Server) contentType() string {
	if s.ContentType == "" {
		return DefaultContentType
	}
	return s.ContentType
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
