// Package errors provides the error codes and error type returned by the
// collector. This is a leaf package with no internal dependencies so it can
// be imported by the collector, the HTTP layer and clients without cycles.
package errors

import (
	"fmt"
	"syscall"
)

// ErrorCode classifies a collection failure, derived from the OS errno of the
// stat family call that failed.
type ErrorCode int

const (
	// ErrNotFound indicates the file does not exist (ENOENT).
	ErrNotFound ErrorCode = iota + 1

	// ErrAccessDenied indicates permission bit violations (EACCES).
	ErrAccessDenied

	// ErrPermissionDenied indicates operation not permitted (EPERM).
	ErrPermissionDenied

	// ErrNotDirectory indicates a path component is not a directory (ENOTDIR).
	ErrNotDirectory

	// ErrNameTooLong indicates the path exceeds maximum length (ENAMETOOLONG).
	ErrNameTooLong

	// ErrTooManyLinks indicates a symlink loop was hit (ELOOP).
	ErrTooManyLinks

	// ErrInvalidArgument indicates an invalid argument was provided (EINVAL).
	ErrInvalidArgument

	// ErrBadDescriptor indicates the file descriptor is not valid (EBADF).
	ErrBadDescriptor

	// ErrIOError indicates an I/O error occurred (EIO).
	ErrIOError

	// ErrNoMemory indicates the kernel ran out of memory (ENOMEM).
	ErrNoMemory

	// ErrNotSupported indicates the operation is not supported here (ENOTSUP).
	ErrNotSupported

	// ErrUnknown covers errnos without a dedicated code.
	ErrUnknown
)

// String returns a human-readable name for the error code.
func (e ErrorCode) String() string {
	switch e {
	case ErrNotFound:
		return "NotFound"
	case ErrAccessDenied:
		return "AccessDenied"
	case ErrPermissionDenied:
		return "PermissionDenied"
	case ErrNotDirectory:
		return "NotDirectory"
	case ErrNameTooLong:
		return "NameTooLong"
	case ErrTooManyLinks:
		return "TooManyLinks"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrBadDescriptor:
		return "BadDescriptor"
	case ErrIOError:
		return "IOError"
	case ErrNoMemory:
		return "NoMemory"
	case ErrNotSupported:
		return "NotSupported"
	case ErrUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Unknown(%d)", e)
	}
}

// CodeFromErrno maps an OS errno to its error code.
func CodeFromErrno(errno syscall.Errno) ErrorCode {
	switch errno {
	case syscall.ENOENT:
		return ErrNotFound
	case syscall.EACCES:
		return ErrAccessDenied
	case syscall.EPERM:
		return ErrPermissionDenied
	case syscall.ENOTDIR:
		return ErrNotDirectory
	case syscall.ENAMETOOLONG:
		return ErrNameTooLong
	case syscall.ELOOP:
		return ErrTooManyLinks
	case syscall.EINVAL:
		return ErrInvalidArgument
	case syscall.EBADF:
		return ErrBadDescriptor
	case syscall.EIO:
		return ErrIOError
	case syscall.ENOMEM:
		return ErrNoMemory
	case syscall.ENOTSUP:
		return ErrNotSupported
	default:
		return ErrUnknown
	}
}

// CollectError is a collection failure with a classified code. The only
// producer is the mandatory stat of a collection call; everything else the
// collector does degrades silently.
type CollectError struct {
	Code    ErrorCode
	Message string
	Path    string
}

// Error implements the error interface.
func (e *CollectError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (path: %s)", e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewStatError creates the error for a failed stat/lstat on path.
func NewStatError(path string, errno syscall.Errno) *CollectError {
	return &CollectError{
		Code:    CodeFromErrno(errno),
		Message: fmt.Sprintf("error stating file: %s", errno.Error()),
		Path:    path,
	}
}

// NewFstatError creates the error for a failed fstat on a descriptor.
func NewFstatError(fd int, errno syscall.Errno) *CollectError {
	return &CollectError{
		Code:    CodeFromErrno(errno),
		Message: fmt.Sprintf("error stating file descriptor %d: %s", fd, errno.Error()),
	}
}

// NewNotSupportedError creates the error returned on platforms without a
// collector implementation.
func NewNotSupportedError(operation string) *CollectError {
	return &CollectError{
		Code:    ErrNotSupported,
		Message: fmt.Sprintf("%s is not supported on this platform", operation),
	}
}

// NewInvalidArgumentError creates an InvalidArgument error.
func NewInvalidArgumentError(message string) *CollectError {
	return &CollectError{
		Code:    ErrInvalidArgument,
		Message: message,
	}
}

// CodeOf extracts the error code, with ok false for foreign errors.
func CodeOf(err error) (ErrorCode, bool) {
	if ce, ok := err.(*CollectError); ok {
		return ce.Code, true
	}
	return 0, false
}

// IsNotFound returns true if the error is a NotFound error.
func IsNotFound(err error) bool {
	if ce, ok := err.(*CollectError); ok {
		return ce.Code == ErrNotFound
	}
	return false
}

// IsAccessDenied returns true for both permission flavors (EACCES, EPERM).
func IsAccessDenied(err error) bool {
	if ce, ok := err.(*CollectError); ok {
		return ce.Code == ErrAccessDenied || ce.Code == ErrPermissionDenied
	}
	return false
}

// IsInvalidArgument returns true if the error is an InvalidArgument error.
func IsInvalidArgument(err error) bool {
	if ce, ok := err.(*CollectError); ok {
		return ce.Code == ErrInvalidArgument
	}
	return false
}
