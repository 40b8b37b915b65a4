package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Common attribute keys for collection operations.
// These follow OpenTelemetry semantic conventions where applicable.
// Collection-specific keys use the "fs." and "attr." prefixes.
const (
	// ========================================================================
	// Client attributes
	// ========================================================================
	AttrClientIP   = "client.ip"
	AttrClientAddr = "client.address"

	// ========================================================================
	// Collection attributes
	// ========================================================================
	AttrOperation = "fs.operation"  // Collection entry point: path or fd
	AttrPath      = "fs.path"       // Full file path
	AttrFilename  = "fs.filename"   // File name (basename)
	AttrFd        = "fs.fd"         // File descriptor number
	AttrFollow    = "fs.follow"     // Whether symlinks are followed
	AttrFields    = "fs.fields"     // Requested built-in fields
	AttrPattern   = "fs.pattern"    // Attribute matcher pattern
	AttrStatus    = "fs.status"     // Operation status code
	AttrStatusMsg = "fs.status_msg" // Human-readable status

	// ========================================================================
	// Attribute-record attributes
	// ========================================================================
	AttrCount     = "attr.count"     // Attributes in the produced record
	AttrNamespace = "attr.namespace" // Attribute namespace being processed

	// ========================================================================
	// User/Auth attributes
	// ========================================================================
	AttrUsername = "user.name"
	AttrAuth     = "auth.method"
)

// Span names for operations.
// Format: <component>.<operation>
const (
	// Root span for API request processing
	SpanAPIRequest = "api.request"

	// Collection spans
	SpanCollectPath = "fileinfo.collect_path"
	SpanCollectFd   = "fileinfo.collect_fd"
)

// ClientIP returns an attribute for client IP address
func ClientIP(ip string) attribute.KeyValue {
	return attribute.String(AttrClientIP, ip)
}

// ClientAddr returns an attribute for full client address
func ClientAddr(addr string) attribute.KeyValue {
	return attribute.String(AttrClientAddr, addr)
}

// FSOperation returns an attribute for the collection entry point
func FSOperation(op string) attribute.KeyValue {
	return attribute.String(AttrOperation, op)
}

// FSPath returns an attribute for file path
func FSPath(path string) attribute.KeyValue {
	return attribute.String(AttrPath, path)
}

// FSFilename returns an attribute for filename
func FSFilename(name string) attribute.KeyValue {
	return attribute.String(AttrFilename, name)
}

// FSFd returns an attribute for file descriptor number
func FSFd(fd int) attribute.KeyValue {
	return attribute.Int(AttrFd, fd)
}

// FSFollow returns an attribute for the symlink follow mode
func FSFollow(follow bool) attribute.KeyValue {
	return attribute.Bool(AttrFollow, follow)
}

// FSFields returns an attribute for the requested field list
func FSFields(fields string) attribute.KeyValue {
	return attribute.String(AttrFields, fields)
}

// FSPattern returns an attribute for the attribute matcher pattern
func FSPattern(pattern string) attribute.KeyValue {
	return attribute.String(AttrPattern, pattern)
}

// FSStatus returns an attribute for operation status
func FSStatus(status string) attribute.KeyValue {
	return attribute.String(AttrStatus, status)
}

// FSStatusMsg returns an attribute for status message
func FSStatusMsg(msg string) attribute.KeyValue {
	return attribute.String(AttrStatusMsg, msg)
}

// AttributeCount returns an attribute for the record size
func AttributeCount(count int) attribute.KeyValue {
	return attribute.Int(AttrCount, count)
}

// Namespace returns an attribute for the attribute namespace
func Namespace(ns string) attribute.KeyValue {
	return attribute.String(AttrNamespace, ns)
}

// Username returns an attribute for username
func Username(name string) attribute.KeyValue {
	return attribute.String(AttrUsername, name)
}

// AuthMethod returns an attribute for authentication method
func AuthMethod(method string) attribute.KeyValue {
	return attribute.String(AttrAuth, method)
}

// StartCollectPathSpan starts a span for a path collection.
// This is a convenience function that sets common attributes.
func StartCollectPathSpan(ctx context.Context, path string, follow bool, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		FSOperation("path"),
		FSPath(path),
		FSFollow(follow),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, SpanCollectPath, trace.WithAttributes(allAttrs...))
}

// StartCollectFdSpan starts a span for a descriptor collection.
func StartCollectFdSpan(ctx context.Context, fd int, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := []attribute.KeyValue{
		FSOperation("fd"),
		FSFd(fd),
	}
	allAttrs = append(allAttrs, attrs...)

	return StartSpan(ctx, SpanCollectFd, trace.WithAttributes(allAttrs...))
}
