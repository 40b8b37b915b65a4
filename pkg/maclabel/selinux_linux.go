//go:build linux

package maclabel

import (
	"bytes"

	selinux "github.com/opencontainers/selinux/go-selinux"
	"golang.org/x/sys/unix"
)

// selinuxXattr is the extended attribute the kernel stores contexts in.
const selinuxXattr = "security.selinux"

// labelBufSize fits every realistic context; the fetch still grows on ERANGE
// in case of exotic policies.
const labelBufSize = 128

// maxLabelSize bounds the growth; a context larger than this is treated as
// absent.
const maxLabelSize = 64 * 1024

// SELinux reads security contexts from the security.selinux xattr. The
// enabled check is delegated to the runtime's policy state and is cheap to
// call repeatedly.
type SELinux struct{}

// New returns the platform label subsystem.
func New() Subsystem {
	return SELinux{}
}

// Enabled reports whether SELinux is enforcing or permissive on this host.
func (SELinux) Enabled() bool {
	return selinux.GetEnabled()
}

// Label returns the context of path, following symlinks only when follow is
// set, so the label always describes the same object the caller stats.
func (SELinux) Label(path string, follow bool) (string, bool) {
	get := func(buf []byte) (int, error) {
		if follow {
			return unix.Getxattr(path, selinuxXattr, buf)
		}
		return unix.Lgetxattr(path, selinuxXattr, buf)
	}
	return fetchLabel(get)
}

// LabelFd returns the context of the open file behind fd.
func (SELinux) LabelFd(fd int) (string, bool) {
	get := func(buf []byte) (int, error) {
		return unix.Fgetxattr(fd, selinuxXattr, buf)
	}
	return fetchLabel(get)
}

// fetchLabel reads the label xattr, growing the buffer on ERANGE. Contexts
// are stored NUL-terminated; the trailing NUL is stripped.
func fetchLabel(get func([]byte) (int, error)) (string, bool) {
	buf := make([]byte, labelBufSize)
	for {
		n, err := get(buf)
		if err == unix.ERANGE && len(buf) < maxLabelSize {
			buf = make([]byte, len(buf)*2)
			continue
		}
		if err != nil || n <= 0 {
			return "", false
		}
		label := bytes.TrimRight(buf[:n], "\x00")
		if len(label) == 0 {
			return "", false
		}
		return string(label), true
	}
}
