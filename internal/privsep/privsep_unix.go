//go:build unix

package privsep

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func apply(root string, cred *Credentials) error {
	if err := unix.Setgid(cred.GID); err != nil {
		return fmt.Errorf("setgid(2): %w", err)
	}
	if err := unix.Setgroups(cred.Groups); err != nil {
		return fmt.Errorf("setgroups(2): %w", err)
	}
	if err := unix.Chroot(root); err != nil {
		return fmt.Errorf("chroot(2) %s: %w", root, err)
	}
	if err := unix.Chdir("/"); err != nil {
		return fmt.Errorf("chdir(2): %w", err)
	}
	if err := unix.Setuid(cred.UID); err != nil {
		return fmt.Errorf("setuid(2): %w", err)
	}
	return nil
}
