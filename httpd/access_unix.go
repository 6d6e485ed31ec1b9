//go:build unix

package httpd

import (
	"os"

	"golang.org/x/sys/unix"
)

func readable(path string, _ os.FileInfo) bool {
	return unix.Access(path, unix.R_OK) == nil
}
