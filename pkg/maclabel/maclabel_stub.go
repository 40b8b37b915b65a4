//go:build !linux

package maclabel

// New returns the disabled subsystem on platforms without MAC labeling.
func New() Subsystem {
	return Disabled{}
}
