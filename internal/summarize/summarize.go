// internal/summarize/summarize.go
package summarize

import (
	"sort"

	"crypticsj-core/filter"
	"crypticsj/pkg/api"
)

// PerGene folds audit verdicts into one row per gene: how many cryptic
// junctions it carries, how many of those rose on knockdown, and how many
// were brought back down by rescue. Junctions with no gene annotation share
// the "" bucket (rendered "." in TSV). Output is sorted by gene name.
func PerGene(verdicts []filter.Verdict) []api.GeneSummaryV1 {
	byGene := make(map[string]*api.GeneSummaryV1)
	for _, v := range verdicts {
		if !v.Stage1 {
			continue
		}
		g := byGene[v.Profile.Gene]
		if g == nil {
			g = &api.GeneSummaryV1{Gene: v.Profile.Gene}
			byGene[v.Profile.Gene] = g
		}
		g.CrypticCount++
		if v.Stage2 {
			g.KnockdownAssociated++
		}
		if v.Final {
			g.RescueInduced++
		}
	}
	out := make([]api.GeneSummaryV1, 0, len(byGene))
	for _, g := range byGene {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Gene < out[j].Gene })
	return out
}
