//go:build !unix

package listen

import "net"

// The backlog cannot be chosen here; the system default applies.
func listenPort(port string, _ int) (net.Listener, error) {
	return net.Listen("tcp4", ":"+port)
}
