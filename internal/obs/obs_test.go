package obs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZeroLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := ZeroLogger{L: zerolog.New(&buf).Level(zerolog.InfoLevel)}
	l.Logf(Debug, "hidden %d", 1)
	l.Logf(Error, "failed to read %s", "x.html")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line not filtered: %q", out)
	}
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, `"message":"failed to read x.html"`) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestNewLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(true, &buf)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	l.Logf(Warn, "parse error on request line (%d): %s", 3, "GET / FTP/1.0")
	out := buf.String()
	if !strings.Contains(out, "WRN") || !strings.Contains(out, "parse error on request line (3): GET / FTP/1.0") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCounters(t *testing.T) {
	var c Counters
	c.Counter("responses", 1, Label{"status", "200"})
	c.Counter("responses", 1, Label{"status", "200"})
	c.Counter("responses", 1, Label{"status", "404"})
	c.Histogram("conn_seconds", 0.5)
	c.Histogram("conn_seconds", 1.5)
	s := c.Snapshot()
	if s[`responses{status="200"}`] != 2 || s[`responses{status="404"}`] != 1 {
		t.Fatalf("counters=%v", s)
	}
	if s["conn_seconds_sum"] != 2 || s["conn_seconds_count"] != 2 {
		t.Fatalf("histogram=%v", s)
	}
}
