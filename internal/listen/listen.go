// Package listen turns a port into a bound, listening TCP socket.
package listen

import "net"

const (
	DefaultPort    = "80"
	DefaultBacklog = 5
)

// Port listens on port on every IPv4 address with SO_REUSEADDR set and at
// most backlog pending connections. port may be a number or a service
// name; empty selects DefaultPort, and backlog <= 0 selects DefaultBacklog.
func Port(port string, backlog int) (net.Listener, error) {
	if port == "" {
		port = DefaultPort
	}
	if backlog <= 0 {
		backlog = DefaultBacklog
	}
	return listenPort(port, backlog)
}
