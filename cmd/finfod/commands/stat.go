package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/marmos91/finfo/internal/cli/output"
	"github.com/marmos91/finfo/internal/cli/timeutil"
	"github.com/marmos91/finfo/pkg/attr"
	"github.com/marmos91/finfo/pkg/config"
	"github.com/marmos91/finfo/pkg/fileinfo"
	"github.com/marmos91/finfo/pkg/maclabel"
	"github.com/spf13/cobra"
)

var (
	statFields     string
	statAttributes string
	statFollow     bool
	statOutput     string
)

var statCmd = &cobra.Command{
	Use:   "stat <path>...",
	Short: "Collect file attributes locally",
	Long: `Collect attributes for one or more paths on the local filesystem.

This runs the collector in-process and does not require a running daemon.
Unlike the REST API the local command is not restricted by the configured
collection roots.

Built-in fields are selected with --fields; extended attributes, unix stat
details, timestamps and MAC labels are selected with an attribute pattern.

Examples:
  # Collect the built-in fields for a file
  finfod stat /etc/hosts

  # Everything the collector knows about a file
  finfod stat --attributes "*" /etc/hosts

  # Extended attributes only
  finfod stat --fields "" --attributes "xattr:*" /srv/data/report.pdf

  # Follow a symlink instead of describing it
  finfod stat -L /etc/localtime

  # Machine-readable output
  finfod stat -o json /etc/hosts`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStat,
}

func init() {
	statCmd.Flags().StringVar(&statFields, "fields", "all", "Comma-separated built-in fields (name, is-hidden, symlink-target, ...) or \"all\"")
	statCmd.Flags().StringVar(&statAttributes, "attributes", "", "Attribute match pattern (e.g. \"xattr:*\" or \"unix:*,time:*\")")
	statCmd.Flags().BoolVarP(&statFollow, "follow", "L", false, "Follow symbolic links")
	statCmd.Flags().StringVarP(&statOutput, "output", "o", "table", "Output format (table|json|yaml)")
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
	format, err := output.ParseFormat(statOutput)
	if err != nil {
		return err
	}

	fields, err := attr.ParseFields(statFields)
	if err != nil {
		return fmt.Errorf("invalid --fields: %w", err)
	}
	matcher := attr.NewMatcher(statAttributes)

	// The collector honors the configured value-size cap; everything else
	// about the configuration (roots, API, auth) is daemon-side only.
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	collector := fileinfo.New(fileinfo.Config{
		MaxValueSize: cfg.Collector.MaxValueSize,
	}, maclabel.New(), nil)

	results := make([]statResult, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("invalid path %q: %w", arg, err)
		}

		record, err := collector.CollectByPath(cmd.Context(), filepath.Base(abs), abs, fields, matcher, statFollow)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}

		results = append(results, newStatResult(abs, statFollow, record))
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

func newStatResult(path string, follow bool, record *attr.Record) statResult {
	entries := record.Entries()
	out := make([]statEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, statEntry{
			Key:   string(e.Key),
			Type:  e.Value.Kind().String(),
			Value: entryValue(e.Value),
		})
	}
	return statResult{Path: path, Follow: follow, Attributes: out}
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
