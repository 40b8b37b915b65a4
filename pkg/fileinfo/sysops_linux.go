//go:build linux

package fileinfo

import (
	"time"

	"golang.org/x/sys/unix"
)

// defaultSysOps returns the Linux syscall bundle.
func defaultSysOps() sysOps {
	return sysOps{
		stat: func(path string, follow bool) (statResult, error) {
			var st unix.Stat_t
			var err error
			if follow {
				err = unix.Stat(path, &st)
			} else {
				err = unix.Lstat(path, &st)
			}
			if err != nil {
				return statResult{}, err
			}
			return fromUnixStat(&st), nil
		},
		fstat: func(fd int) (statResult, error) {
			var st unix.Stat_t
			if err := unix.Fstat(fd, &st); err != nil {
				return statResult{}, err
			}
			return fromUnixStat(&st), nil
		},
		readlink: func(path string, buf []byte) (int, error) {
			return unix.Readlink(path, buf)
		},
		listxattr: func(path string, follow bool, buf []byte) (int, error) {
			if follow {
				return unix.Listxattr(path, buf)
			}
			return unix.Llistxattr(path, buf)
		},
		getxattr: func(path, name string, follow bool, buf []byte) (int, error) {
			if follow {
				return unix.Getxattr(path, name, buf)
			}
			return unix.Lgetxattr(path, name, buf)
		},
	}
}

// fromUnixStat converts the platform stat structure. The explicit conversions
// absorb field width differences between Linux architectures.
func fromUnixStat(st *unix.Stat_t) statResult {
	return statResult{
		Dev:       uint64(st.Dev),
		Ino:       uint64(st.Ino),
		Mode:      uint32(st.Mode),
		Nlink:     uint64(st.Nlink),
		UID:       st.Uid,
		GID:       st.Gid,
		Rdev:      uint64(st.Rdev),
		Size:      st.Size,
		BlockSize: int64(st.Blksize),
		Blocks:    int64(st.Blocks),
		Atime:     time.Unix(st.Atim.Unix()),
		Mtime:     time.Unix(st.Mtim.Unix()),
		Ctime:     time.Unix(st.Ctim.Unix()),
	}
}
