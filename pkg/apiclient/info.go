package apiclient

import (
	"net/url"
	"strings"

	"github.com/marmos91/finfo/pkg/attr"
)

// InfoOptions narrow an Info call. The zero value requests every built-in
// field, no extended attributes, and the no-follow view of symlinks.
type InfoOptions struct {
	// Fields selects built-in fields by name (e.g. "name", "is-hidden",
	// "symlink-target"). Nil requests all of them; an empty non-nil slice
	// requests none, which is useful together with Attributes.
	Fields []string

	// Attributes is the attribute selection pattern, e.g. "xattr:*" or
	// "selinux:context,xattr:user.comment".
	Attributes string

	// Follow resolves symlinks instead of describing the link itself.
	Follow bool
}

// InfoResult is the payload of a successful Info call.
type InfoResult struct {
	Path       string       `json:"path"`
	Follow     bool         `json:"follow"`
	Attributes []attr.Entry `json:"attributes"`
}

// Info collects attributes for a path on the daemon's filesystem.
func (c *Client) Info(path string, opts InfoOptions) (*InfoResult, error) {
	params := url.Values{}
	params.Set("path", path)
	if opts.Fields != nil {
		params.Set("fields", strings.Join(opts.Fields, ","))
	}
	if opts.Attributes != "" {
		params.Set("attributes", opts.Attributes)
	}
	if opts.Follow {
		params.Set("follow", "true")
	}

	return getData[InfoResult](c, "/api/v1/info?"+params.Encode())
}
