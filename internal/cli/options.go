// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"crypticsj-core/filter"
	"crypticsj/internal/output"
	"crypticsj/internal/version"
)

// Reference formats
const (
	RefAuto = "auto"
	RefGTF  = "gtf"
	RefTSV  = "tsv"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	JunctionFiles []string
	Reference     string
	RefFormat     string

	// Filter thresholds
	MinReads    int
	MinFold     float64
	MaxRetained float64
	Pseudocount float64

	// Performance
	Threads int

	// Output
	Output    string
	RejectLog string
	Header    bool // true unless --no-header
	Quiet     bool
	LogJSON   bool

	Version bool
}

// FilterConfig maps the threshold flags onto the core filter configuration.
func (o Options) FilterConfig() filter.Config {
	return filter.Config{
		MinReads:    o.MinReads,
		MinFold:     o.MinFold,
		MaxRetained: o.MaxRetained,
		Pseudocount: o.Pseudocount,
	}
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: cryptic splice-junction rescue filter

Selects junctions that are absent from the reference annotation, rise on
TDP-43 knockdown, and fall back on rescue re-expression.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	def := filter.Default()
	var opt Options
	var help bool

	// Input
	var junctions stringSlice
	fs.Var(&junctions, "junctions", "junction observation table(s): TSV/CSV/parquet, '-' for stdin (repeatable) [*]")
	fs.StringVar(&opt.Reference, "reference", "", "reference transcript model: GTF/GFF or junction TSV [*]")
	fs.StringVar(&opt.RefFormat, "ref-format", RefAuto, "reference format: auto | gtf | tsv [auto]")

	// Filter thresholds
	fs.IntVar(&opt.MinReads, "min-reads", def.MinReads, fmt.Sprintf("detection threshold on aggregated counts [%d]", def.MinReads))
	fs.Float64Var(&opt.MinFold, "min-fold", def.MinFold, fmt.Sprintf("minimum knockdown/control fold increase (stage 2) [%g]", def.MinFold))
	fs.Float64Var(&opt.MaxRetained, "max-retained", def.MaxRetained, fmt.Sprintf("maximum rescue/knockdown retained fraction (stage 3) [%g]", def.MaxRetained))
	fs.Float64Var(&opt.Pseudocount, "pseudocount", def.Pseudocount, fmt.Sprintf("pseudocount added to both terms of every fold-change [%g]", def.Pseudocount))

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "parallel chromosome partitions (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json | jsonl [text]")
	fs.StringVar(&opt.RejectLog, "reject-log", "", "write excluded input rows with reason codes to this TSV")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress run log except warnings/errors [false]")
	fs.BoolVar(&opt.LogJSON, "log-json", false, "emit the run log as JSON lines [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.JunctionFiles = junctions
	opt.Header = !noHeader

	// Validation
	if len(opt.JunctionFiles) == 0 {
		return opt, errors.New("at least one --junctions table is required")
	}
	if opt.Reference == "" {
		return opt, errors.New("--reference is required")
	}
	switch opt.RefFormat {
	case RefAuto, RefGTF, RefTSV:
	default:
		return opt, fmt.Errorf("invalid --ref-format %q", opt.RefFormat)
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.Output {
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
