// Package attr defines the attribute data model shared by the collector, the
// HTTP API and the clients: namespaced attribute keys, tagged attribute values,
// ordered per-call records, the built-in field bitmask and the request matcher.
package attr

import (
	"fmt"
	"strings"
)

// Attribute namespaces produced by the collector.
const (
	// NamespaceStandard holds the portable built-ins (name, type, size, ...).
	NamespaceStandard = "standard"

	// NamespaceUnix holds raw stat fields (inode, uid, mode, ...).
	NamespaceUnix = "unix"

	// NamespaceTime holds file timestamps.
	NamespaceTime = "time"

	// NamespaceXattr holds extended attributes, one key per attribute name.
	NamespaceXattr = "xattr"

	// NamespaceSELinux holds the mandatory-access-control label.
	NamespaceSELinux = "selinux"
)

// Key identifies a single attribute as "<namespace>:<keyword>".
// The namespace is everything before the first colon; a key without a colon
// is a bare namespace with an empty keyword.
type Key string

// Built-in keys in the standard namespace.
const (
	KeyName          Key = "standard:name"
	KeyIsHidden      Key = "standard:is-hidden"
	KeySymlinkTarget Key = "standard:symlink-target"
	KeyType          Key = "standard:type"
	KeySize          Key = "standard:size"
	KeyAccessRights  Key = "standard:access-rights"
	KeyDisplayName   Key = "standard:display-name"
	KeyEditName      Key = "standard:edit-name"
	KeyMIMEType      Key = "standard:mime-type"
	KeyIcon          Key = "standard:icon"
)

// Raw stat keys in the unix namespace.
const (
	KeyUnixDevice    Key = "unix:device"
	KeyUnixInode     Key = "unix:inode"
	KeyUnixMode      Key = "unix:mode"
	KeyUnixNlink     Key = "unix:nlink"
	KeyUnixUID       Key = "unix:uid"
	KeyUnixGID       Key = "unix:gid"
	KeyUnixRdev      Key = "unix:rdev"
	KeyUnixBlockSize Key = "unix:block-size"
	KeyUnixBlocks    Key = "unix:blocks"
)

// Timestamp keys in the time namespace.
const (
	KeyTimeModified Key = "time:modified"
	KeyTimeAccess   Key = "time:access"
	KeyTimeChanged  Key = "time:changed"
)

// KeySELinuxContext is the single key of the selinux namespace.
const KeySELinuxContext Key = "selinux:context"

// XattrKey returns the record key for an extended attribute, preserving the
// raw on-disk attribute name (e.g. "user.comment" -> "xattr:user.comment").
func XattrKey(name string) Key {
	return Key(NamespaceXattr + ":" + name)
}

// Namespace returns the portion of the key before the first colon. A key
// without a colon is treated as a bare namespace.
func (k Key) Namespace() string {
	if i := strings.IndexByte(string(k), ':'); i >= 0 {
		return string(k[:i])
	}
	return string(k)
}

// Keyword returns the portion of the key after the first colon, or "" for a
// bare namespace.
func (k Key) Keyword() string {
	if i := strings.IndexByte(string(k), ':'); i >= 0 {
		return string(k[i+1:])
	}
	return ""
}

// ParseKey validates that s has the "<namespace>:<keyword>" shape with both
// parts non-empty.
func ParseKey(s string) (Key, error) {
	i := strings.IndexByte(s, ':')
	if i <= 0 || i == len(s)-1 {
		return "", fmt.Errorf("invalid attribute key %q: want \"namespace:keyword\"", s)
	}
	return Key(s), nil
}

func (k Key) String() string {
	return string(k)
}
