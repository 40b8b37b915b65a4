package metrics

import (
	"time"
)

// CollectorMetrics provides observability for metadata collection calls.
//
// This interface is optional - pass nil to disable metrics collection with
// zero overhead.
//
// Example usage:
//
//	// With metrics enabled
//	metrics.InitRegistry()
//	m := prometheus.NewCollectorMetrics()
//	collector := fileinfo.New(cfg, labels, m)
//
//	// Without metrics (pass nil for zero overhead)
//	collector := fileinfo.New(cfg, labels, nil)
type CollectorMetrics interface {
	// RecordCollection records a completed collection call.
	//
	// Parameters:
	//   - op: entry point, "path" or "fd"
	//   - outcome: "ok" on success, otherwise the error code name
	//     (e.g. "NotFound")
	//   - duration: time taken by the call
	RecordCollection(op string, outcome string, duration time.Duration)

	// RecordAttributes records how many attributes a successful collection
	// produced.
	//
	// Parameters:
	//   - op: entry point, "path" or "fd"
	//   - count: number of attributes in the returned record
	RecordAttributes(op string, count int)

	// RecordFetchRetry records a buffer-growth retry during a
	// variable-length fetch.
	//
	// Parameters:
	//   - kind: fetch protocol, "symlink", "xattr_list" or "xattr_value"
	RecordFetchRetry(kind string)
}
