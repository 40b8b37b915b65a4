// Package fileinfo collects per-file metadata from the local filesystem into
// attribute records: stat-derived built-ins, symlink targets, extended
// attributes and the mandatory-access-control label.
//
// A Collector exposes two entry points. CollectByPath works on a path and a
// symlink-follow flag; CollectByFd works on an open descriptor. Both are
// synchronous, share no state between calls and are safe for concurrent use.
// Each call plans its syscalls up front: a request covered by basename-only
// fields performs no syscall at all, everything else performs exactly one
// stat-family call whose failure is the only fatal outcome. Symlink targets,
// extended attributes and labels are best effort; their failures leave the
// field absent rather than failing the record.
package fileinfo

import (
	"context"
	"strings"
	"time"

	"github.com/marmos91/finfo/internal/bytesize"
	"github.com/marmos91/finfo/internal/logger"
	"github.com/marmos91/finfo/pkg/attr"
	ferrors "github.com/marmos91/finfo/pkg/fileinfo/errors"
	"github.com/marmos91/finfo/pkg/maclabel"
	"github.com/marmos91/finfo/pkg/metrics"
)

// DefaultMaxValueSize caps the growth of variable-length fetch buffers when
// the configuration does not say otherwise.
const DefaultMaxValueSize = 4 * bytesize.MiB

// Entry point names used in logs and metrics.
const (
	opPath = "path"
	opFd   = "fd"
)

// outcomeOK labels successful collections in metrics.
const outcomeOK = "ok"

// Fetch retry kinds reported to metrics.
const (
	retrySymlink    = "symlink"
	retryXattrList  = "xattr_list"
	retryXattrValue = "xattr_value"
)

// Config holds the collector settings.
type Config struct {
	// MaxValueSize caps symlink targets, xattr name lists and xattr values.
	// A value that would need a larger buffer is treated as absent.
	MaxValueSize bytesize.ByteSize `mapstructure:"max_value_size"`
}

// ApplyDefaults fills in defaults for unset fields.
func (c *Config) ApplyDefaults() {
	if c.MaxValueSize == 0 {
		c.MaxValueSize = DefaultMaxValueSize
	}
}

// Collector gathers metadata records. Construct with New; the zero value is
// not usable.
type Collector struct {
	maxValueSize int
	labels       maclabel.Subsystem
	metrics      metrics.CollectorMetrics
	sys          sysOps
}

// New creates a Collector.
//
// labels supplies the mandatory-access-control subsystem; maclabel.New gives
// the platform one. m may be nil to disable metrics.
func New(cfg Config, labels maclabel.Subsystem, m metrics.CollectorMetrics) *Collector {
	cfg.ApplyDefaults()
	return &Collector{
		maxValueSize: int(cfg.MaxValueSize),
		labels:       labels,
		metrics:      m,
		sys:          defaultSysOps(),
	}
}

// newWithSys is New with an injected syscall bundle, for tests.
func newWithSys(cfg Config, labels maclabel.Subsystem, m metrics.CollectorMetrics, sys sysOps) *Collector {
	c := New(cfg, labels, m)
	c.sys = sys
	return c
}

// CollectByPath gathers metadata for the file at fullPath into a fresh
// record. basename is the file's name within its directory; it answers the
// name and hidden fields without touching the filesystem. follow selects the
// treatment of symlinks for the whole call: stat, xattr reads and the label
// all target the link target when true and the link itself when false.
//
// The returned error is non-nil only when the mandatory stat fails (or ctx
// is done); every other failure leaves its field out of the record.
func (c *Collector) CollectByPath(ctx context.Context, basename, fullPath string, fields attr.FieldSet, matcher *attr.Matcher, follow bool) (*attr.Record, error) {
	start := time.Now()

	rec := attr.NewRecord()
	rec.Set(attr.KeyName, attr.String(attr.EscapeValue([]byte(basename))))
	if fields.Has(attr.FieldIsHidden) {
		rec.Set(attr.KeyIsHidden, attr.Bool(strings.HasPrefix(basename, ".")))
	}

	p := buildPlan(fields, matcher, c.labels, true)
	if !p.needStat {
		c.observe(opPath, start, rec)
		return rec, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st, err := c.sys.stat(fullPath, follow)
	if err != nil {
		cerr := ferrors.NewStatError(fullPath, errnoOf(err))
		c.observeError(opPath, cerr.Code, start)
		logger.DebugCtx(ctx, "collection aborted by stat failure",
			"path", fullPath,
			"follow", follow,
			"error", cerr.Error())
		return nil, cerr
	}
	setStatAttributes(rec, &st)

	if p.wantTarget {
		target, ok := fetchSymlink(func(buf []byte) (int, error) {
			return c.sys.readlink(fullPath, buf)
		}, c.maxValueSize, c.grew(retrySymlink))
		if ok {
			rec.Set(attr.KeySymlinkTarget, attr.String(attr.EscapeValue([]byte(target))))
		}
	}

	setPlaceholderAttributes(rec, fields)

	if p.wantLabel {
		if label, ok := c.labels.Label(fullPath, follow); ok {
			rec.Set(attr.KeySELinuxContext, attr.String(attr.EscapeValue([]byte(label))))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.collectXattrs(rec, p, fullPath, follow)

	c.observe(opPath, start, rec)
	logger.DebugCtx(ctx, "collection complete",
		"operation", opPath,
		"path", fullPath,
		"follow", follow,
		"attr_count", rec.Len())
	return rec, nil
}

// CollectByFd gathers metadata for an open descriptor into a fresh record.
// The descriptor already names one file, so there is no follow mode; fstat
// runs unconditionally and its failure is the only fatal outcome. pattern is
// parsed into a matcher internally. Extended attributes are not collected on
// this entry point (the pattern only decides the label fetch), and the name
// and hidden fields have no basename to draw from, so neither appears.
func (c *Collector) CollectByFd(ctx context.Context, fd int, fields attr.FieldSet, pattern string) (*attr.Record, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matcher := attr.NewMatcher(pattern)
	rec := attr.NewRecord()

	st, err := c.sys.fstat(fd)
	if err != nil {
		cerr := ferrors.NewFstatError(fd, errnoOf(err))
		c.observeError(opFd, cerr.Code, start)
		logger.DebugCtx(ctx, "collection aborted by fstat failure",
			"fd", fd,
			"error", cerr.Error())
		return nil, cerr
	}
	setStatAttributes(rec, &st)

	setPlaceholderAttributes(rec, fields)

	if matcher.Matches(attr.KeySELinuxContext) && c.labels != nil && c.labels.Enabled() {
		if label, ok := c.labels.LabelFd(fd); ok {
			rec.Set(attr.KeySELinuxContext, attr.String(attr.EscapeValue([]byte(label))))
		}
	}

	c.observe(opFd, start, rec)
	logger.DebugCtx(ctx, "collection complete",
		"operation", opFd,
		"fd", fd,
		"attr_count", rec.Len())
	return rec, nil
}

// collectXattrs fetches either every reported attribute or exactly the
// requested ones, per the plan. Failures skip the attribute.
func (c *Collector) collectXattrs(rec *attr.Record, p plan, path string, follow bool) {
	if p.xattrAll {
		names, ok := fetchXattrNames(func(buf []byte) (int, error) {
			return c.sys.listxattr(path, follow, buf)
		}, c.maxValueSize, c.grew(retryXattrList))
		if !ok {
			return
		}
		for _, name := range names {
			c.collectOneXattr(rec, path, name, follow)
		}
		return
	}

	for _, key := range p.xattrKeys {
		c.collectOneXattr(rec, path, key.Keyword(), follow)
	}
}

// collectOneXattr fetches and escapes a single extended attribute value.
func (c *Collector) collectOneXattr(rec *attr.Record, path, name string, follow bool) {
	value, ok := fetchXattrValue(func(buf []byte) (int, error) {
		return c.sys.getxattr(path, name, follow, buf)
	}, c.maxValueSize, c.grew(retryXattrValue))
	if !ok {
		return
	}
	rec.Set(attr.XattrKey(name), attr.String(attr.EscapeValue(value)))
}

// placeholderFields are the requested-field bits whose computation is not
// implemented yet. The bits stay in the API contract; records answer them
// with the explicit unimplemented value.
var placeholderFields = []struct {
	field attr.FieldSet
	key   attr.Key
}{
	{attr.FieldAccessRights, attr.KeyAccessRights},
	{attr.FieldDisplayName, attr.KeyDisplayName},
	{attr.FieldEditName, attr.KeyEditName},
	{attr.FieldMIMEType, attr.KeyMIMEType},
	{attr.FieldIcon, attr.KeyIcon},
}

func setPlaceholderAttributes(rec *attr.Record, fields attr.FieldSet) {
	for _, pf := range placeholderFields {
		if fields.Has(pf.field) {
			rec.Set(pf.key, attr.Unimplemented())
		}
	}
}

// grew returns the retry callback for a fetch protocol, nil when metrics are
// disabled.
func (c *Collector) grew(kind string) func() {
	if c.metrics == nil {
		return nil
	}
	return func() { c.metrics.RecordFetchRetry(kind) }
}

func (c *Collector) observe(op string, start time.Time, rec *attr.Record) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordCollection(op, outcomeOK, time.Since(start))
	c.metrics.RecordAttributes(op, rec.Len())
}

func (c *Collector) observeError(op string, code ferrors.ErrorCode, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordCollection(op, code.String(), time.Since(start))
}
