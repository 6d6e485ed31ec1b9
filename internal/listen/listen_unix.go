//go:build unix

package listen

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

func listenPort(port string, backlog int) (net.Listener, error) {
	p, err := net.LookupPort("tcp", port)
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, fmt.Errorf("listen: socket: %w", err)
	}
	unix.CloseOnExec(fd)
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("listen: setsockopt: %w", err)
	}
	if err := unix.Bind(fd, &unix.SockaddrInet4{Port: p}); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("listen: bind port %d: %w", p, err)
	}
	if err := unix.Listen(fd, backlog); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("listen: %w", err)
	}
	f := os.NewFile(uintptr(fd), "tcp:"+port)
	defer f.Close()
	ln, err := net.FileListener(f)
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}
	return ln, nil
}
