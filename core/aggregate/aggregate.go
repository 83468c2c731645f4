// core/aggregate/aggregate.go
package aggregate

import (
	"context"
	"sort"

	"crypticsj-core/errs"
	"crypticsj-core/junction"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// Summary is the collapsed view of one junction in one condition.
// Sum is the aggregate across replicate samples (read counts add); Mean is
// the per-replicate mean, carried as provenance only and never thresholded.
type Summary struct {
	Sum        int
	Replicates int
	Mean       float64
	Detected   bool
}

// Profile holds the three per-condition summaries for one junction, in
// junction.Conditions order. Every junction always has all three, zero-filled
// where a condition was never observed, so downstream fold-changes always
// have defined terms.
type Profile struct {
	Key  junction.Key
	Gene string
	Cond [3]Summary
}

// Get returns the summary for condition c.
func (p *Profile) Get(c junction.Condition) Summary {
	return p.Cond[c.Index()]
}

// Options controls aggregation.
type Options struct {
	MinReads int // detection threshold: Detected = Sum >= MinReads
	Threads  int // parallel chromosome partitions; <=1 runs serial
}

// Collapse groups observations by (junction, condition) and sums replicate
// read counts. Output is sorted by genomic coordinate and is identical for
// serial and parallel runs: junctions never cross chromosome boundaries and
// sums are order-independent.
func Collapse(ctx context.Context, obs []junction.Observation, opt Options) ([]Profile, error) {
	if opt.Threads <= 1 || len(obs) == 0 {
		return collapsePartition(ctx, obs, opt)
	}

	parts := make(map[string][]junction.Observation)
	for _, o := range obs {
		parts[o.Key.Chrom] = append(parts[o.Key.Chrom], o)
	}
	chroms := make([]string, 0, len(parts))
	for c := range parts {
		chroms = append(chroms, c)
	}
	sort.Strings(chroms)

	results := make([][]Profile, len(chroms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opt.Threads)
	for i, chrom := range chroms {
		i, chrom := i, chrom
		g.Go(func() error {
			ps, err := collapsePartition(gctx, parts[chrom], opt)
			if err != nil {
				return err
			}
			results[i] = ps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []Profile
	for _, ps := range results {
		out = append(out, ps...)
	}
	return out, nil
}

func collapsePartition(ctx context.Context, obs []junction.Observation, opt Options) ([]Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	type accum struct {
		gene   string
		counts [3][]float64
	}
	acc := make(map[junction.Key]*accum)
	for _, o := range obs {
		if o.Count < 0 {
			return nil, &errs.ComputationError{Stage: "aggregate", Reason: "negative read count for " + o.Key.String()}
		}
		a := acc[o.Key]
		if a == nil {
			a = &accum{}
			acc[o.Key] = a
		}
		if a.gene == "" {
			a.gene = o.Gene
		}
		ci := o.Condition.Index()
		a.counts[ci] = append(a.counts[ci], float64(o.Count))
	}

	out := make([]Profile, 0, len(acc))
	for k, a := range acc {
		p := Profile{Key: k, Gene: a.gene}
		for ci, xs := range a.counts {
			s := Summary{Replicates: len(xs)}
			for _, x := range xs {
				s.Sum += int(x)
			}
			if s.Sum < 0 {
				return nil, &errs.ComputationError{Stage: "aggregate", Reason: "aggregated count overflowed for " + k.String()}
			}
			if len(xs) > 0 {
				s.Mean = stat.Mean(xs, nil)
			}
			s.Detected = s.Sum >= opt.MinReads
			p.Cond[ci] = s
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return junction.Less(out[i].Key, out[j].Key) })
	return out, nil
}
