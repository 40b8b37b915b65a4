package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/marmos91/finfo/cmd/finfoctl/cmdutil"
	"github.com/marmos91/finfo/internal/cli/output"
	"github.com/marmos91/finfo/internal/cli/timeutil"
	"github.com/marmos91/finfo/pkg/apiclient"
	"github.com/marmos91/finfo/pkg/attr"
	"github.com/spf13/cobra"
)

var (
	statFields     string
	statAttributes string
	statFollow     bool
)

var statCmd = &cobra.Command{
	Use:   "stat <path>...",
	Short: "Collect file attributes from the server",
	Long: `Collect attributes for one or more paths on the connected server.

Paths are resolved on the server's filesystem and must be absolute. The
server only serves paths inside its configured collection roots.

Built-in fields are selected with --fields; extended attributes, unix stat
details, timestamps and MAC labels are selected with an attribute pattern.

Examples:
  # Collect the built-in fields for a file
  finfoctl stat /etc/hosts

  # Everything the server knows about a file
  finfoctl stat --attributes "*" /etc/hosts

  # Extended attributes only
  finfoctl stat --fields "" --attributes "xattr:*" /srv/data/report.pdf

  # Follow a symlink instead of describing it
  finfoctl stat -L /etc/localtime

  # Machine-readable output
  finfoctl stat -o json /etc/hosts`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStat,
}

func init() {
	statCmd.Flags().StringVar(&statFields, "fields", "all", "Comma-separated built-in fields (name, is-hidden, symlink-target, ...) or \"all\"")
	statCmd.Flags().StringVar(&statAttributes, "attributes", "", "Attribute match pattern (e.g. \"xattr:*\" or \"unix:*,time:*\")")
	statCmd.Flags().BoolVarP(&statFollow, "follow", "L", false, "Follow symbolic links")
}

// statEntry is one attribute in command output. Value uses the same
// canonical encoding as the REST API (timestamps as RFC 3339 strings,
// sizes and modes as integers).
type statEntry struct {
	Key   string `json:"key" yaml:"key"`
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// statResult is the collected record for a single path.
type statResult struct {
	Path       string      `json:"path" yaml:"path"`
	Follow     bool        `json:"follow" yaml:"follow"`
	Attributes []statEntry `json:"attributes" yaml:"attributes"`
}

func runStat(cmd *cobra.Command, args []string) error {
	format, err := cmdutil.GetOutputFormatParsed()
	if err != nil {
		return err
	}

	opts := apiclient.InfoOptions{
		Attributes: statAttributes,
		Follow:     statFollow,
	}
	switch statFields {
	case "all":
		// Server default: all built-in fields.
	case "":
		opts.Fields = []string{}
	default:
		opts.Fields = cmdutil.ParseCommaSeparatedList(statFields)
	}

	client, err := cmdutil.GetClient()
	if err != nil {
		return err
	}

	results := make([]statResult, 0, len(args))
	for _, arg := range args {
		if !filepath.IsAbs(arg) {
			return fmt.Errorf("path %q must be absolute: paths are resolved on the server", arg)
		}

		res, err := client.Info(arg, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}

		results = append(results, newStatResult(res))
	}

	switch format {
	case output.FormatJSON:
		if len(results) == 1 {
			return output.PrintJSON(os.Stdout, results[0])
		}
		return output.PrintJSON(os.Stdout, results)
	case output.FormatYAML:
		if len(results) == 1 {
			return output.PrintYAML(os.Stdout, results[0])
		}
		return output.PrintYAML(os.Stdout, results)
	default:
		printStatTables(results)
	}

	return nil
}

func newStatResult(res *apiclient.InfoResult) statResult {
	out := make([]statEntry, 0, len(res.Attributes))
	for _, e := range res.Attributes {
		out = append(out, statEntry{
			Key:   string(e.Key),
			Type:  e.Value.Kind().String(),
			Value: entryValue(e.Value),
		})
	}
	return statResult{Path: res.Path, Follow: res.Follow, Attributes: out}
}

// entryValue converts an attribute value to its canonical output encoding.
// Unimplemented values have no payload and render as nil.
func entryValue(v attr.Value) any {
	switch v.Kind() {
	case attr.KindBool:
		b, _ := v.AsBool()
		return b
	case attr.KindString:
		s, _ := v.AsString()
		return s
	case attr.KindSize:
		n, _ := v.AsSize()
		return n
	case attr.KindMode:
		m, _ := v.AsMode()
		return m
	case attr.KindTime:
		t, _ := v.AsTime()
		return t.Format(time.RFC3339Nano)
	default:
		return nil
	}
}

// printStatTables renders each result as a key/value table. Timestamps are
// shown in local time; all other values use their canonical string form.
func printStatTables(results []statResult) {
	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s:\n", res.Path)
		}

		pairs := make([][2]string, 0, len(res.Attributes))
		for _, entry := range res.Attributes {
			pairs = append(pairs, [2]string{entry.Key, renderStatValue(entry)})
		}
		_ = output.SimpleTable(os.Stdout, pairs)
	}
}

func renderStatValue(entry statEntry) string {
	switch entry.Type {
	case attr.KindTime.String():
		if s, ok := entry.Value.(string); ok {
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				return timeutil.FormatLocal(t)
			}
		}
	case attr.KindUnimplemented.String():
		return "(not implemented)"
	case attr.KindMode.String():
		if m, ok := entry.Value.(uint32); ok {
			return fmt.Sprintf("%04o", m)
		}
	}
	return fmt.Sprintf("%v", entry.Value)
}
