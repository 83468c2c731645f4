// core/filter/filter.go
package filter

import (
	"fmt"

	"crypticsj-core/aggregate"
	"crypticsj-core/errs"
	"crypticsj-core/junction"
)

// Config fixes the filter thresholds for a run. The pseudocount is applied
// uniformly to both terms of every fold-change, so a zero denominator still
// yields a finite, bounded ratio.
type Config struct {
	MinReads    int     // detection threshold on aggregated counts
	MinFold     float64 // stage 2: knockdown/control fold-change floor
	MaxRetained float64 // stage 3: rescue/knockdown fraction ceiling
	Pseudocount float64
}

// Default returns the documented defaults: sum aggregation with a detection
// floor of 2 reads, a 5x knockdown increase, at most 20% retained after
// rescue, pseudocount 1.
func Default() Config {
	return Config{MinReads: 2, MinFold: 5, MaxRetained: 0.2, Pseudocount: 1}
}

// Validate rejects threshold combinations that cannot express the intended
// biology, before any stage runs.
func (c Config) Validate() error {
	switch {
	case c.MinReads < 1:
		return &errs.ConfigurationError{Reason: fmt.Sprintf("min-reads must be >= 1, got %d", c.MinReads)}
	case c.MinFold <= 1:
		return &errs.ConfigurationError{Reason: fmt.Sprintf("min-fold must be > 1, got %g", c.MinFold)}
	case c.MaxRetained <= 0 || c.MaxRetained >= 1:
		return &errs.ConfigurationError{Reason: fmt.Sprintf("max-retained must be in (0,1), got %g", c.MaxRetained)}
	case c.Pseudocount <= 0:
		return &errs.ConfigurationError{Reason: fmt.Sprintf("pseudocount must be > 0, got %g", c.Pseudocount)}
	}
	return nil
}

// Verdict accumulates one cryptic candidate's passage through the stages.
// Created at stage 1, appended to by stages 2 and 3, immutable afterwards.
type Verdict struct {
	Profile aggregate.Profile

	Stage1 bool
	Stage2 bool
	Stage3 bool

	// KnockdownFold = (siTDP43+pc)/(control+pc); RescueFold inverts the
	// direction: (rescue+pc)/(siTDP43+pc).
	KnockdownFold float64
	RescueFold    float64

	Final bool
}

// Stage1 keeps junctions absent from the reference model and detected in at
// least one condition. A junction must be both structurally novel and
// observed above noise to count as a cryptic event.
func Stage1(profiles []aggregate.Profile, annotated map[junction.Key]bool) []Verdict {
	var out []Verdict
	for _, p := range profiles {
		if annotated[p.Key] {
			continue
		}
		detected := false
		for _, s := range p.Cond {
			if s.Detected {
				detected = true
				break
			}
		}
		if !detected {
			continue
		}
		out = append(out, Verdict{Profile: p, Stage1: true})
	}
	return out
}

// Stage2 marks verdicts whose knockdown abundance rises at least MinFold
// over control. Detection in the knockdown arm is also required so two
// near-zero counts cannot fake a fold-change. Every input verdict is
// returned with its fold-change recorded for audit.
func Stage2(cfg Config, in []Verdict) []Verdict {
	out := make([]Verdict, len(in))
	for i, v := range in {
		ctl := v.Profile.Get(junction.Control)
		kd := v.Profile.Get(junction.Knockdown)
		v.KnockdownFold = (float64(kd.Sum) + cfg.Pseudocount) / (float64(ctl.Sum) + cfg.Pseudocount)
		v.Stage2 = kd.Detected && v.KnockdownFold >= cfg.MinFold
		out[i] = v
	}
	return out
}

// Stage3 marks verdicts whose rescue abundance falls back to at most
// MaxRetained of knockdown, and finalizes membership. The direction is the
// inverse of stage 2: rescue should reverse the knockdown effect.
func Stage3(cfg Config, in []Verdict) []Verdict {
	out := make([]Verdict, len(in))
	for i, v := range in {
		kd := v.Profile.Get(junction.Knockdown)
		res := v.Profile.Get(junction.Rescue)
		v.RescueFold = (float64(res.Sum) + cfg.Pseudocount) / (float64(kd.Sum) + cfg.Pseudocount)
		v.Stage3 = v.RescueFold <= cfg.MaxRetained
		v.Final = v.Stage1 && v.Stage2 && v.Stage3
		out[i] = v
	}
	return out
}

// Final selects the verdicts that passed all three stages, preserving order.
func Final(in []Verdict) []Verdict {
	var out []Verdict
	for _, v := range in {
		if v.Final {
			out = append(out, v)
		}
	}
	return out
}
