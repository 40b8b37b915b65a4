//go:build !linux

package fileinfo

import "syscall"

// defaultSysOps returns a bundle whose calls all fail with ENOTSUP. The
// collector only targets Linux; on other platforms every collection ends in
// a NotSupported error from the mandatory stat.
func defaultSysOps() sysOps {
	return sysOps{
		stat: func(string, bool) (statResult, error) {
			return statResult{}, syscall.ENOTSUP
		},
		fstat: func(int) (statResult, error) {
			return statResult{}, syscall.ENOTSUP
		},
		readlink: func(string, []byte) (int, error) {
			return 0, syscall.ENOTSUP
		},
		listxattr: func(string, bool, []byte) (int, error) {
			return 0, syscall.ENOTSUP
		},
		getxattr: func(string, string, bool, []byte) (int, error) {
			return 0, syscall.ENOTSUP
		},
	}
}
