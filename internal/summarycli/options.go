// internal/summarycli/options.go
package summarycli

import (
	"flag"
	"fmt"

	"crypticsj/internal/cli"
	"crypticsj/internal/output"
	"crypticsj/internal/version"
)

// Options extends the base filter options with summary output control.
// sjsummary runs the same pipeline but reports per-gene counts instead of
// per-junction rows.
type Options struct {
	cli.Options
}

// NewFlagSet returns a configured FlagSet with sjsummary usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: per-gene cryptic junction summary

Runs the cryptic/knockdown/rescue filter and reports, for each gene, the
number of cryptic junctions, how many are knockdown-associated, and how many
are rescued.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs parses the shared filter flags; jsonl has no meaning for the
// small summary table, so only text and json are accepted.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	base, err := cli.ParseArgs(fs, argv)
	if err != nil {
		return Options{Options: base}, err
	}
	if base.Output == output.FormatJSONL {
		return Options{Options: base}, fmt.Errorf("invalid --output %q for summaries (use text or json)", base.Output)
	}
	return Options{Options: base}, nil
}
