// Package maclabel abstracts the mandatory-access-control label source used
// by the collector. On Linux this is the SELinux security context; elsewhere
// the subsystem reports itself disabled.
//
// Label lookups are best effort: a missing or unreadable label is reported as
// absent, never as an error. Callers are expected to consult Enabled before
// fetching so disabled systems skip the work entirely.
package maclabel

// Subsystem answers whether MAC labeling is active and fetches labels.
type Subsystem interface {
	// Enabled reports whether the platform label subsystem is active.
	Enabled() bool

	// Label returns the label of path. With follow set, symlinks resolve to
	// their target's label; otherwise the link's own label is returned.
	Label(path string, follow bool) (string, bool)

	// LabelFd returns the label of the file behind an open descriptor.
	LabelFd(fd int) (string, bool)
}

// Disabled is the subsystem of platforms without MAC labeling.
type Disabled struct{}

// Enabled always reports false.
func (Disabled) Enabled() bool { return false }

// Label always reports absent.
func (Disabled) Label(string, bool) (string, bool) { return "", false }

// LabelFd always reports absent.
func (Disabled) LabelFd(int) (string, bool) { return "", false }
