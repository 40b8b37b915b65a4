package fileinfo

import (
	"errors"
	"syscall"
)

// sysOps bundles the syscalls a collection call depends on. The default
// bundle is the platform one from defaultSysOps; tests inject fakes to drive
// the fetch protocols deterministically and count calls.
//
// stat collapses stat/lstat behind the follow flag, and listxattr/getxattr
// collapse their l-variants the same way. An empty buf on the xattr calls is
// a size probe.
type sysOps struct {
	stat      func(path string, follow bool) (statResult, error)
	fstat     func(fd int) (statResult, error)
	readlink  func(path string, buf []byte) (int, error)
	listxattr func(path string, follow bool, buf []byte) (int, error)
	getxattr  func(path, name string, follow bool, buf []byte) (int, error)
}

// errnoOf extracts the errno from a syscall error, falling back to EIO for
// errors that carry none.
func errnoOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return syscall.EIO
}
