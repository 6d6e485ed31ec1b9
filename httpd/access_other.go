//go:build !unix

package httpd

import "os"

func readable(_ string, st os.FileInfo) bool {
	return st.Mode().Perm()&0o444 != 0
}
