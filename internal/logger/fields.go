package logger

import (
	"log/slog"
)

// Standard field keys for structured logging.
// Use these keys consistently across all log statements so collection logs
// aggregate and query cleanly regardless of which entry point produced them.
const (
	// ========================================================================
	// Distributed Tracing
	// ========================================================================
	KeyTraceID = "trace_id" // OpenTelemetry trace ID for request correlation
	KeySpanID  = "span_id"  // OpenTelemetry span ID for operation tracking

	// ========================================================================
	// Collection Operation
	// ========================================================================
	KeyOperation = "operation"  // Collection entry point: path, fd
	KeyPath      = "path"       // Full file path being collected
	KeyFd        = "fd"         // File descriptor for descriptor-based collection
	KeyFollow    = "follow"     // Whether symlinks are followed
	KeyFields    = "fields"     // Requested structural field set
	KeyPattern   = "pattern"    // Attribute match pattern as supplied by the caller
	KeyStatus    = "status"     // Operation status code
	KeyStatusMsg = "status_msg" // Human-readable status message

	// ========================================================================
	// Attributes
	// ========================================================================
	KeyNamespace = "namespace"   // Attribute namespace: standard, unix, time, xattr, selinux
	KeyAttribute = "attribute"   // Fully qualified attribute key
	KeyAttrCount = "attr_count"  // Number of attributes in a record
	KeyValueSize = "value_size"  // Size of a fetched attribute value in bytes
	KeyBufferLen = "buffer_len"  // Current fetch buffer length in bytes

	// ========================================================================
	// File System
	// ========================================================================
	KeyFilename   = "filename"    // File or directory name (basename)
	KeyType       = "type"        // File type: regular, directory, symlink, etc.
	KeySize       = "size"        // File size in bytes
	KeyMode       = "mode"        // File mode/permissions (Unix-style)
	KeyLinkTarget = "link_target" // Symbolic link target path

	// ========================================================================
	// Client & Request
	// ========================================================================
	KeyClientIP   = "client_ip"   // Client IP address
	KeyClientPort = "client_port" // Client source port
	KeyRequestID  = "request_id"  // HTTP request identifier

	// ========================================================================
	// Operation Metadata
	// ========================================================================
	KeyDurationMs = "duration_ms" // Operation duration in milliseconds
	KeyError      = "error"       // Error message
	KeyErrorCode  = "error_code"  // Numeric error code

	// ========================================================================
	// Process & Server
	// ========================================================================
	KeyComponent = "component" // Subsystem name: api, metrics, daemon
	KeyAddress   = "address"   // Listen address
	KeyPort      = "port"      // Listen port
	KeyPID       = "pid"       // Process identifier
	KeySignal    = "signal"    // OS signal name
)

// ============================================================================
// Field constructors for type safety
// These functions provide type-safe construction of slog.Attr values.
// ============================================================================

// ----------------------------------------------------------------------------
// Distributed Tracing
// ----------------------------------------------------------------------------

// TraceID returns a slog.Attr for OpenTelemetry trace ID
func TraceID(id string) slog.Attr {
	return slog.String(KeyTraceID, id)
}

// SpanID returns a slog.Attr for OpenTelemetry span ID
func SpanID(id string) slog.Attr {
	return slog.String(KeySpanID, id)
}

// ----------------------------------------------------------------------------
// Collection Operation
// ----------------------------------------------------------------------------

// Operation returns a slog.Attr for the collection entry point
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Path returns a slog.Attr for file/directory path
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Fd returns a slog.Attr for a file descriptor
func Fd(fd int) slog.Attr {
	return slog.Int(KeyFd, fd)
}

// Follow returns a slog.Attr for the symlink-follow flag
func Follow(follow bool) slog.Attr {
	return slog.Bool(KeyFollow, follow)
}

// Fields returns a slog.Attr for the requested structural field set
func Fields(fields string) slog.Attr {
	return slog.String(KeyFields, fields)
}

// Pattern returns a slog.Attr for an attribute match pattern
func Pattern(p string) slog.Attr {
	return slog.String(KeyPattern, p)
}

// Status returns a slog.Attr for operation status code
func Status(code int) slog.Attr {
	return slog.Int(KeyStatus, code)
}

// StatusMsg returns a slog.Attr for human-readable status message
func StatusMsg(msg string) slog.Attr {
	return slog.String(KeyStatusMsg, msg)
}

// ----------------------------------------------------------------------------
// Attributes
// ----------------------------------------------------------------------------

// Namespace returns a slog.Attr for an attribute namespace
func Namespace(ns string) slog.Attr {
	return slog.String(KeyNamespace, ns)
}

// Attribute returns a slog.Attr for a fully qualified attribute key
func Attribute(key string) slog.Attr {
	return slog.String(KeyAttribute, key)
}

// AttrCount returns a slog.Attr for the number of attributes in a record
func AttrCount(n int) slog.Attr {
	return slog.Int(KeyAttrCount, n)
}

// ValueSize returns a slog.Attr for the size of a fetched attribute value
func ValueSize(n int) slog.Attr {
	return slog.Int(KeyValueSize, n)
}

// BufferLen returns a slog.Attr for the current fetch buffer length
func BufferLen(n int) slog.Attr {
	return slog.Int(KeyBufferLen, n)
}

// ----------------------------------------------------------------------------
// File System
// ----------------------------------------------------------------------------

// Filename returns a slog.Attr for filename (basename)
func Filename(name string) slog.Attr {
	return slog.String(KeyFilename, name)
}

// TypeStr returns a slog.Attr for file type as string
func TypeStr(t string) slog.Attr {
	return slog.String(KeyType, t)
}

// Size returns a slog.Attr for file size
func Size(s uint64) slog.Attr {
	return slog.Uint64(KeySize, s)
}

// Mode returns a slog.Attr for file mode/permissions
func Mode(m uint32) slog.Attr {
	return slog.Any(KeyMode, m)
}

// LinkTarget returns a slog.Attr for symbolic link target path
func LinkTarget(target string) slog.Attr {
	return slog.String(KeyLinkTarget, target)
}

// ----------------------------------------------------------------------------
// Client & Request
// ----------------------------------------------------------------------------

// ClientIP returns a slog.Attr for client IP address
func ClientIP(addr string) slog.Attr {
	return slog.String(KeyClientIP, addr)
}

// ClientPort returns a slog.Attr for client source port
func ClientPort(port int) slog.Attr {
	return slog.Int(KeyClientPort, port)
}

// RequestID returns a slog.Attr for an HTTP request identifier
func RequestID(id string) slog.Attr {
	return slog.String(KeyRequestID, id)
}

// ----------------------------------------------------------------------------
// Operation Metadata
// ----------------------------------------------------------------------------

// DurationMs returns a slog.Attr for duration in milliseconds
func DurationMs(ms float64) slog.Attr {
	return slog.Float64(KeyDurationMs, ms)
}

// Err returns a slog.Attr for an error
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// ErrorCode returns a slog.Attr for numeric error code
func ErrorCode(code int) slog.Attr {
	return slog.Int(KeyErrorCode, code)
}

// ----------------------------------------------------------------------------
// Process & Server
// ----------------------------------------------------------------------------

// Component returns a slog.Attr for a subsystem name
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Address returns a slog.Attr for a listen address
func Address(addr string) slog.Attr {
	return slog.String(KeyAddress, addr)
}

// Port returns a slog.Attr for a listen port
func Port(port int) slog.Attr {
	return slog.Int(KeyPort, port)
}

// PID returns a slog.Attr for a process identifier
func PID(pid int) slog.Attr {
	return slog.Int(KeyPID, pid)
}

// Signal returns a slog.Attr for an OS signal name
func Signal(sig string) slog.Attr {
	return slog.String(KeySignal, sig)
}
