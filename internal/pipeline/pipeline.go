// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"crypticsj-core/aggregate"
	"crypticsj-core/annotate"
	"crypticsj-core/filter"
	"crypticsj-core/junction"
	"crypticsj-core/table"
)

// Config controls one pipeline run.
type Config struct {
	JunctionFiles []string
	Reference     string
	RefFormat     string // "auto" | "gtf" | "tsv"
	Filter        filter.Config
	Threads       int
}

// Stats accounts for every row and junction so a run can report itself
// without silent data loss.
type Stats struct {
	RowsLoaded   int
	RowsRejected int
	Junctions    int
	Reference    int
	Cryptic      int // stage 1 survivors
	KnockdownUp  int // also passed stage 2
	Rescued      int // also passed stage 3 (final)
}

// Run executes the full pipeline. The returned verdicts cover every stage-1
// survivor with per-stage flags and fold-changes for audit; filter.Final
// narrows them to the output set. Thresholds are validated before anything
// is read.
func Run(ctx context.Context, cfg Config) ([]filter.Verdict, []table.Reject, Stats, error) {
	var stats Stats

	if err := cfg.Filter.Validate(); err != nil {
		return nil, nil, stats, err
	}

	refKeys, err := loadReference(cfg.Reference, cfg.RefFormat)
	if err != nil {
		return nil, nil, stats, fmt.Errorf("reference: %w", err)
	}
	index, err := annotate.NewIndex(refKeys)
	if err != nil {
		return nil, nil, stats, err
	}
	stats.Reference = index.Len()

	obs, rejects, err := table.Load(cfg.JunctionFiles)
	if err != nil {
		return nil, nil, stats, fmt.Errorf("load: %w", err)
	}
	stats.RowsLoaded = len(obs)
	stats.RowsRejected = len(rejects)

	status := annotate.Annotate(index, obs)

	profiles, err := aggregate.Collapse(ctx, obs, aggregate.Options{
		MinReads: cfg.Filter.MinReads,
		Threads:  cfg.Threads,
	})
	if err != nil {
		return nil, rejects, stats, fmt.Errorf("aggregate: %w", err)
	}
	stats.Junctions = len(profiles)

	verdicts := filter.Stage1(profiles, status)
	stats.Cryptic = len(verdicts)

	verdicts = filter.Stage2(cfg.Filter, verdicts)
	verdicts = filter.Stage3(cfg.Filter, verdicts)
	for _, v := range verdicts {
		if v.Stage2 {
			stats.KnockdownUp++
		}
		if v.Final {
			stats.Rescued++
		}
	}
	return verdicts, rejects, stats, nil
}

func loadReference(path, format string) ([]junction.Key, error) {
	if format == "auto" || format == "" {
		format = "tsv"
		p := strings.ToLower(strings.TrimSuffix(path, ".gz"))
		if strings.HasSuffix(p, ".gtf") || strings.HasSuffix(p, ".gff") ||
			strings.HasSuffix(p, ".gff2") || strings.HasSuffix(p, ".gff3") {
			format = "gtf"
		}
	}
	if format == "gtf" {
		return annotate.LoadGTF(path)
	}
	return annotate.LoadTSV(path)
}
