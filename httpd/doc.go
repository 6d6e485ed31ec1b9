// Package httpd is a small HTTP/1.x origin server that answers each
// connection with exactly one response read from a document root.
//
// Every accepted connection is handled by its own goroutine. A request is
// read with ReadRequest, the path is mapped onto the document root with
// Resolve, and the response is written with Connection: close:
//
//	GET, HEAD   200 with the file, or 404
//	POST        405
//	otherwise   501
//
// Malformed requests, oversized bodies and I/O failures end only the
// connection they occurred on; they are logged and the connection is
// closed without a response.
//
// Quick start:
//
//	s := &httpd.Server{DocRoot: "/var/www", Logger: logger}
//	if err := s.ListenAndServe("8080"); err != nil { ... }
package httpd
