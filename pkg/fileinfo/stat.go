package fileinfo

import (
	"time"

	"github.com/marmos91/finfo/pkg/attr"
)

// POSIX file type bits of st_mode. Declared locally so the portable parts of
// the package do not depend on a platform syscall package.
const (
	modeTypeMask    = 0o170000
	modeSocket      = 0o140000
	modeSymlink     = 0o120000
	modeRegular     = 0o100000
	modeBlockDevice = 0o060000
	modeDirectory   = 0o040000
	modeCharDevice  = 0o020000
	modeFIFO        = 0o010000
)

// statResult carries the stat fields the collector consumes, decoupled from
// the platform-specific stat structure layout.
type statResult struct {
	Dev       uint64
	Ino       uint64
	Mode      uint32
	Nlink     uint64
	UID       uint32
	GID       uint32
	Rdev      uint64
	Size      int64
	BlockSize int64
	Blocks    int64
	Atime     time.Time
	Mtime     time.Time
	Ctime     time.Time
}

// fileTypeName maps the type bits of a raw mode to a stable name.
func fileTypeName(mode uint32) string {
	switch mode & modeTypeMask {
	case modeRegular:
		return "regular"
	case modeDirectory:
		return "directory"
	case modeSymlink:
		return "symlink"
	case modeFIFO:
		return "fifo"
	case modeSocket:
		return "socket"
	case modeCharDevice:
		return "chardev"
	case modeBlockDevice:
		return "blockdev"
	default:
		return "unknown"
	}
}

// setStatAttributes populates the stat-derived built-in attributes on rec.
// Numeric counters use the size variant; permission bits use the mode variant
// with the type bits masked off.
func setStatAttributes(rec *attr.Record, st *statResult) {
	rec.Set(attr.KeyType, attr.String(fileTypeName(st.Mode)))
	rec.Set(attr.KeySize, attr.Size(uint64(st.Size)))

	rec.Set(attr.KeyUnixDevice, attr.Size(st.Dev))
	rec.Set(attr.KeyUnixInode, attr.Size(st.Ino))
	rec.Set(attr.KeyUnixMode, attr.Mode(st.Mode&^uint32(modeTypeMask)))
	rec.Set(attr.KeyUnixNlink, attr.Size(st.Nlink))
	rec.Set(attr.KeyUnixUID, attr.Size(uint64(st.UID)))
	rec.Set(attr.KeyUnixGID, attr.Size(uint64(st.GID)))
	rec.Set(attr.KeyUnixRdev, attr.Size(st.Rdev))
	rec.Set(attr.KeyUnixBlockSize, attr.Size(uint64(st.BlockSize)))
	rec.Set(attr.KeyUnixBlocks, attr.Size(uint64(st.Blocks)))

	rec.Set(attr.KeyTimeModified, attr.Timestamp(st.Mtime))
	rec.Set(attr.KeyTimeAccess, attr.Timestamp(st.Atime))
	rec.Set(attr.KeyTimeChanged, attr.Timestamp(st.Ctime))
}
