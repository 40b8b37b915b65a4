package attr

import (
	"fmt"
	"strings"
)

// FieldSet is a bitmask of the built-in fields a caller can request,
// independent of the attribute matcher.
type FieldSet uint32

const (
	// FieldName requests standard:name.
	FieldName FieldSet = 1 << iota

	// FieldIsHidden requests standard:is-hidden.
	FieldIsHidden

	// FieldSymlinkTarget requests standard:symlink-target.
	FieldSymlinkTarget

	// FieldAccessRights requests standard:access-rights (not computed yet).
	FieldAccessRights

	// FieldDisplayName requests standard:display-name (not computed yet).
	FieldDisplayName

	// FieldEditName requests standard:edit-name (not computed yet).
	FieldEditName

	// FieldMIMEType requests standard:mime-type (not computed yet).
	FieldMIMEType

	// FieldIcon requests standard:icon (not computed yet).
	FieldIcon
)

// FieldsAll requests every built-in field.
const FieldsAll = FieldName | FieldIsHidden | FieldSymlinkTarget | FieldAccessRights |
	FieldDisplayName | FieldEditName | FieldMIMEType | FieldIcon

// fieldOrder fixes the rendering order of String.
var fieldOrder = []struct {
	field FieldSet
	name  string
}{
	{FieldName, "name"},
	{FieldIsHidden, "is-hidden"},
	{FieldSymlinkTarget, "symlink-target"},
	{FieldAccessRights, "access-rights"},
	{FieldDisplayName, "display-name"},
	{FieldEditName, "edit-name"},
	{FieldMIMEType, "mime-type"},
	{FieldIcon, "icon"},
}

// Has reports whether every bit of field is set.
func (f FieldSet) Has(field FieldSet) bool {
	return f&field == field
}

// String renders the set as a comma-separated list, e.g. "name,is-hidden".
func (f FieldSet) String() string {
	if f == 0 {
		return ""
	}
	var names []string
	for _, entry := range fieldOrder {
		if f.Has(entry.field) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseFields parses a comma-separated field list as produced by String.
// "all" selects every field; an empty string is the empty set.
func ParseFields(s string) (FieldSet, error) {
	var set FieldSet
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if name == "all" {
			set |= FieldsAll
			continue
		}
		found := false
		for _, entry := range fieldOrder {
			if entry.name == name {
				set |= entry.field
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown field %q", name)
		}
	}
	return set, nil
}
