//go:build !unix

package privsep

import "errors"

func apply(root string, cred *Credentials) error {
	return errors.New("privsep: chroot is not supported on this platform")
}
