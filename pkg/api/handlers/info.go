package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/marmos91/finfo/internal/telemetry"
	"github.com/marmos91/finfo/pkg/attr"
	"github.com/marmos91/finfo/pkg/fileinfo"
	ferrors "github.com/marmos91/finfo/pkg/fileinfo/errors"
)

// InfoHandler serves file attribute collection requests.
type InfoHandler struct {
	collector *fileinfo.Collector
	roots     []string
}

// NewInfoHandler creates an info handler. The roots list restricts which
// paths may be collected; an empty list allows any absolute path.
func NewInfoHandler(collector *fileinfo.Collector, roots []string) *InfoHandler {
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		cleaned = append(cleaned, filepath.Clean(root))
	}
	return &InfoHandler{
		collector: collector,
		roots:     cleaned,
	}
}

// InfoResponse is the data payload for a successful collection.
type InfoResponse struct {
	Path       string       `json:"path"`
	Follow     bool         `json:"follow"`
	Attributes []attr.Entry `json:"attributes"`
}

// Info handles GET /api/v1/info - collect attributes for a single path.
//
// Query parameters:
//   - path: absolute path to stat (required)
//   - fields: comma-separated field names, or "all" (default: all)
//   - attributes: attribute match pattern (default: none)
//   - follow: follow symlinks (default: false)
func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	path := q.Get("path")
	if path == "" {
		BadRequest(w, "Query parameter 'path' is required")
		return
	}
	if !filepath.IsAbs(path) {
		BadRequest(w, "Query parameter 'path' must be absolute")
		return
	}
	path = filepath.Clean(path)

	if !h.pathAllowed(path) {
		Forbidden(w, "Path is outside the configured collection roots")
		return
	}

	fields := attr.FieldsAll
	if q.Has("fields") {
		parsed, err := attr.ParseFields(q.Get("fields"))
		if err != nil {
			BadRequest(w, "Invalid 'fields' parameter: "+err.Error())
			return
		}
		fields = parsed
	}

	follow := false
	if q.Has("follow") {
		parsed, err := strconv.ParseBool(q.Get("follow"))
		if err != nil {
			BadRequest(w, "Invalid 'follow' parameter: must be a boolean")
			return
		}
		follow = parsed
	}

	pattern := q.Get("attributes")
	matcher := attr.NewMatcher(pattern)

	ctx, span := telemetry.StartCollectPathSpan(r.Context(), path, follow,
		telemetry.FSPattern(pattern))
	defer span.End()

	record, err := h.collector.CollectByPath(ctx, filepath.Base(path), path, fields, matcher, follow)
	if err != nil {
		telemetry.RecordError(ctx, err)
		writeCollectProblem(w, err)
		return
	}

	entries := record.Entries()
	telemetry.SetAttributes(ctx, telemetry.AttributeCount(len(entries)))

	writeJSON(w, http.StatusOK, okResponse(InfoResponse{
		Path:       path,
		Follow:     follow,
		Attributes: entries,
	}))
}

// pathAllowed reports whether path falls inside one of the configured roots.
func (h *InfoHandler) pathAllowed(path string) bool {
	if len(h.roots) == 0 {
		return true
	}
	for _, root := range h.roots {
		if root == "/" || path == root || strings.HasPrefix(path, root+"/") {
			return true
		}
	}
	return false
}

// writeCollectProblem maps a collection error to an RFC 7807 response.
func writeCollectProblem(w http.ResponseWriter, err error) {
	code, ok := ferrors.CodeOf(err)
	if !ok {
		InternalServerError(w, err.Error())
		return
	}

	switch code {
	case ferrors.ErrNotFound:
		NotFound(w, err.Error())
	case ferrors.ErrAccessDenied, ferrors.ErrPermissionDenied:
		Forbidden(w, err.Error())
	case ferrors.ErrInvalidArgument:
		BadRequest(w, err.Error())
	default:
		InternalServerError(w, err.Error())
	}
}
