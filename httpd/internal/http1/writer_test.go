package http1

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestStartResponse(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	now := time.Date(2004, time.March, 7, 9, 5, 3, 0, time.FixedZone("JST", 9*3600))
	if err := StartResponse(bw, 1, 404, "LittleHTTP/1.0", now); err != nil {
		t.Fatalf("StartResponse: %v", err)
	}
	if err := EndFields(bw); err != nil {
		t.Fatalf("EndFields: %v", err)
	}
	bw.Flush()
	want := "HTTP/1.1 404 Not Found\r\n" +
		"Date: Sun, 07 Mar 2004 00:05:03 GMT\r\n" +
		"Server: LittleHTTP/1.0\r\n" +
		"Connection: close\r\n" +
		"\r\n"
	if buf.String() != want {
		t.Fatalf("got %q\nwant %q", buf.String(), want)
	}
}

func TestWriteField_StripsControlChars(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	WriteField(bw, "X-Test", "a\r\nInjected: 1\x00")
	bw.Flush()
	if got := buf.String(); got != "X-Test: aInjected: 1\r\n" {
		t.Fatalf("got %q", got)
	}
}

func TestErrorPage(t *testing.T) {
	page := string(ErrorPage(405, "The request method POST is not allowed"))
	if !strings.Contains(page, "<title>405 Method Not Allowed</title>") {
		t.Fatalf("missing title: %q", page)
	}
	if !strings.Contains(page, "<p>The request method POST is not allowed</p>") {
		t.Fatalf("missing message: %q", page)
	}
}
