package fileinfo

import (
	"github.com/marmos91/finfo/pkg/attr"
	"github.com/marmos91/finfo/pkg/maclabel"
)

// trivialFields are the fields answerable from the basename alone. A request
// covered by them, with no matcher, needs no syscall at all.
const trivialFields = attr.FieldName | attr.FieldIsHidden

// plan is the per-call decision of which subsystems run. Computed once at the
// start of a collection and read-only afterwards.
type plan struct {
	// needStat is false only for the trivial basename-only request.
	needStat bool

	// wantTarget requests the symlink-target read (path entry point only).
	wantTarget bool

	// wantLabel requests the MAC label, true only when the matcher asks for
	// it and the label subsystem reports itself enabled.
	wantLabel bool

	// xattrAll fetches every attribute the filesystem reports.
	xattrAll bool

	// xattrKeys are the explicitly requested xattr keys when xattrAll is
	// false.
	xattrKeys []attr.Key
}

// buildPlan evaluates the planner rules for one collection call. withTarget
// is false for the descriptor entry point, which has no link to read.
func buildPlan(fields attr.FieldSet, matcher *attr.Matcher, labels maclabel.Subsystem, withTarget bool) plan {
	var p plan

	if fields&^trivialFields == 0 && matcher.IsEmpty() {
		return p
	}
	p.needStat = true

	p.wantTarget = withTarget && fields.Has(attr.FieldSymlinkTarget)

	if matcher.Matches(attr.KeySELinuxContext) && labels != nil && labels.Enabled() {
		p.wantLabel = true
	}

	if matcher.EnumerateNamespace(attr.NamespaceXattr) {
		p.xattrAll = true
	} else {
		p.xattrKeys = matcher.NamespaceKeys(attr.NamespaceXattr)
	}

	return p
}
