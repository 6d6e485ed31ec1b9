//go:build unix

package httpd

import (
	"errors"

	"golang.org/x/sys/unix"
)

// retryableAccept reports accept failures caused by a delivered signal or
// a peer that gave up before the connection was taken.
func retryableAccept(err error) bool {
	return errors.Is(err, unix.EINTR) || errors.Is(err, unix.ECONNABORTED)
}
