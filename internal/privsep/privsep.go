// Package privsep confines the process to the document root and drops
// root privileges before any connection is served.
package privsep

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"
)

var ErrNeedUserAndGroup = errors.New("use both of --user and --group")

// Credentials are the numeric ids looked up for a user and group.
type Credentials struct {
	UID    int
	GID    int
	Groups []int // supplementary groups of the user, GID included
}

// Lookup resolves userName and groupName. It must run before chroot since
// the account databases are outside the new root.
func Lookup(userName, groupName string) (*Credentials, error) {
	if userName == "" || groupName == "" {
		return nil, ErrNeedUserAndGroup
	}
	gr, err := user.LookupGroup(groupName)
	if err != nil {
		return nil, fmt.Errorf("no such group: %s", groupName)
	}
	u, err := user.Lookup(userName)
	if err != nil {
		return nil, fmt.Errorf("no such user: %s", userName)
	}
	cred := &Credentials{}
	if cred.GID, err = strconv.Atoi(gr.Gid); err != nil {
		return nil, fmt.Errorf("group %s: bad gid %q", groupName, gr.Gid)
	}
	if cred.UID, err = strconv.Atoi(u.Uid); err != nil {
		return nil, fmt.Errorf("user %s: bad uid %q", userName, u.Uid)
	}
	cred.Groups = []int{cred.GID}
	ids, err := u.GroupIds()
	if err != nil {
		return nil, fmt.Errorf("initgroups %s: %w", userName, err)
	}
	for _, s := range ids {
		id, err := strconv.Atoi(s)
		if err != nil || id == cred.GID {
			continue
		}
		cred.Groups = append(cred.Groups, id)
	}
	return cred, nil
}

// Setup looks up the credentials, then changes group, supplementary
// groups, root directory and finally user, in that order.
func Setup(root, userName, groupName string) error {
	cred, err := Lookup(userName, groupName)
	if err != nil {
		return err
	}
	return apply(root, cred)
}
