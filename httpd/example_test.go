package httpd_test

import (
	"bufio"
	"fmt"
	"strings"

	"dqx0.com/go/littlehttpd/httpd"
)

// ExampleHeader_Lookup shows case-insensitive, first-match lookup.
func ExampleHeader_Lookup() {
	h := httpd.Header{
		{Name: "Content-Length", Value: "5"},
		{Name: "content-length", Value: "7"},
	}
	v, ok := h.Lookup("CONTENT-LENGTH")
	fmt.Println(v, ok)
	_, ok = h.Lookup("Host")
	fmt.Println(ok)
	// Output:
	// 5 true
	// false
}

// ExampleReadRequest parses a request; header fields come back
// last-received first.
func ExampleReadRequest() {
	raw := "get /index.html HTTP/1.1\r\nHost: example.com\r\nContent-Length: 2\r\n\r\nhi"
	req, err := httpd.ReadRequest(bufio.NewReader(strings.NewReader(raw)), httpd.Limits{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(req.Method, req.Path, req.ProtocolMinorVersion)
	for _, f := range req.Header {
		fmt.Printf("%s=%s\n", f.Name, f.Value)
	}
	fmt.Printf("%q\n", req.Body)
	// Output:
	// GET /index.html 1
	// Content-Length=2
	// Host=example.com
	// "hi"
}
