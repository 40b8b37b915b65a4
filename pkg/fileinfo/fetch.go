package fileinfo

import (
	"bytes"
	"errors"
	"syscall"
)

const (
	// symlinkBufSize is the initial readlink buffer. readlink cannot report
	// the required size, so the buffer doubles until the target fits.
	symlinkBufSize = 256

	// xattrValueBufSize is the optimistic buffer for a single attribute
	// value, sized so common values need one syscall and no second fetch.
	xattrValueBufSize = 64
)

// fetchFunc is the shape shared by the variable-length syscalls (readlink,
// listxattr, getxattr): fill buf, return the number of bytes produced. For
// the xattr family an empty buf is a size probe.
type fetchFunc func(buf []byte) (int, error)

// isRangeError reports whether err is the kernel's "buffer too small" signal.
func isRangeError(err error) bool {
	return errors.Is(err, syscall.ERANGE)
}

// fetchSymlink reads a symlink target of unknown length. The buffer starts at
// symlinkBufSize and doubles whenever the returned length fills it completely,
// since a full buffer may mean truncation. A returned length strictly below
// the buffer size means the target is complete. Errors and targets beyond
// maxSize report absence; the caller treats that as a missing field.
func fetchSymlink(read fetchFunc, maxSize int, grew func()) (string, bool) {
	size := symlinkBufSize
	if size > maxSize {
		size = maxSize
	}

	for {
		buf := make([]byte, size)
		n, err := read(buf)
		if err != nil {
			return "", false
		}
		if n < len(buf) {
			return string(buf[:n]), true
		}
		if size >= maxSize {
			return "", false
		}
		size *= 2
		if size > maxSize {
			size = maxSize
		}
		if grew != nil {
			grew()
		}
	}
}

// fetchXattrNames lists the extended attribute names of a file. A zero-length
// probe learns the exact list size first; zero or a failed probe means "no
// attributes", which is not an error. The list is then fetched into an
// exactly-sized buffer. If the list grew between probe and fetch the kernel
// reports a range error; the buffer doubles and the fetch retries without
// re-probing, so a file whose attributes churn still converges.
func fetchXattrNames(list fetchFunc, maxSize int, grew func()) ([]string, bool) {
	size, err := list(nil)
	if err != nil || size == 0 {
		return nil, true
	}
	if size < 0 || size > maxSize {
		return nil, false
	}

	for {
		buf := make([]byte, size)
		n, err := list(buf)
		if err == nil {
			return splitXattrNames(buf[:n]), true
		}
		if !isRangeError(err) {
			return nil, false
		}
		if size >= maxSize {
			return nil, false
		}
		size *= 2
		if size > maxSize {
			size = maxSize
		}
		if grew != nil {
			grew()
		}
	}
}

// splitXattrNames walks a packed buffer of NUL-terminated names.
func splitXattrNames(buf []byte) []string {
	var names []string
	for len(buf) > 0 {
		i := bytes.IndexByte(buf, 0)
		if i < 0 {
			names = append(names, string(buf))
			break
		}
		if i > 0 {
			names = append(names, string(buf[:i]))
		}
		buf = buf[i+1:]
	}
	return names
}

// fetchXattrValue reads a single extended attribute value. The first fetch
// goes into a small fixed buffer so common values cost one syscall. On a
// range error the exact size is probed with a zero-length call, an
// exactly-sized buffer is allocated and the value fetched once more. Any
// failure of that second fetch, including the value growing again, skips
// this one attribute.
func fetchXattrValue(get fetchFunc, maxSize int, grew func()) ([]byte, bool) {
	size := xattrValueBufSize
	if size > maxSize {
		size = maxSize
	}

	buf := make([]byte, size)
	n, err := get(buf)
	if err == nil {
		return buf[:n], true
	}
	if !isRangeError(err) {
		return nil, false
	}
	if grew != nil {
		grew()
	}

	size, err = get(nil)
	if err != nil || size < 0 || size > maxSize {
		return nil, false
	}
	if size == 0 {
		return []byte{}, true
	}

	buf = make([]byte, size)
	n, err = get(buf)
	if err != nil {
		return nil, false
	}
	return buf[:n], true
}
