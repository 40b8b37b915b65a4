package attr

import "strings"

// Matcher selects which attributes a collection call should fetch. It is
// built from a comma-separated pattern where each term is either an exact key
// ("selinux:context"), a namespace wildcard ("xattr:*" or the bare "xattr"),
// or "*" for everything.
//
// A nil matcher matches nothing; all methods are safe on the nil receiver.
// Matchers are immutable after construction and safe for concurrent use.
type Matcher struct {
	pattern    string
	all        bool
	namespaces map[string]bool
	exact      map[Key]bool
	order      []Key
}

// NewMatcher parses pattern into a matcher. An empty or blank pattern yields
// nil, the matcher that matches nothing.
func NewMatcher(pattern string) *Matcher {
	m := &Matcher{
		pattern:    pattern,
		namespaces: make(map[string]bool),
		exact:      make(map[Key]bool),
	}
	for _, part := range strings.Split(pattern, ",") {
		term := strings.TrimSpace(part)
		switch {
		case term == "":
			continue
		case term == "*":
			m.all = true
		case strings.HasSuffix(term, ":*"):
			m.namespaces[strings.TrimSuffix(term, ":*")] = true
		case !strings.Contains(term, ":"):
			// A bare namespace selects everything inside it.
			m.namespaces[term] = true
		default:
			key := Key(term)
			if !m.exact[key] {
				m.exact[key] = true
				m.order = append(m.order, key)
			}
		}
	}
	if !m.all && len(m.namespaces) == 0 && len(m.exact) == 0 {
		return nil
	}
	return m
}

// Matches reports whether the matcher selects key, either exactly or through
// a namespace wildcard.
func (m *Matcher) Matches(key Key) bool {
	if m == nil {
		return false
	}
	return m.all || m.namespaces[key.Namespace()] || m.exact[key]
}

// EnumerateNamespace reports whether the matcher asks for everything in the
// namespace, i.e. the caller should list and fetch all attributes rather
// than only the explicitly named ones.
func (m *Matcher) EnumerateNamespace(namespace string) bool {
	if m == nil {
		return false
	}
	return m.all || m.namespaces[namespace]
}

// NamespaceKeys returns the explicitly named keys of the namespace in
// pattern order. It is the non-wildcard counterpart of EnumerateNamespace.
func (m *Matcher) NamespaceKeys(namespace string) []Key {
	if m == nil {
		return nil
	}
	var keys []Key
	for _, k := range m.order {
		if k.Namespace() == namespace {
			keys = append(keys, k)
		}
	}
	return keys
}

// IsEmpty reports whether the matcher selects nothing.
func (m *Matcher) IsEmpty() bool {
	if m == nil {
		return true
	}
	return !m.all && len(m.namespaces) == 0 && len(m.exact) == 0
}

// Pattern returns the pattern the matcher was built from.
func (m *Matcher) Pattern() string {
	if m == nil {
		return ""
	}
	return m.pattern
}
