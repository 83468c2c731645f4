// core/annotate/annotate.go
package annotate

import (
	"crypticsj-core/errs"
	"crypticsj-core/junction"
)

// Index is the immutable reference junction set. Built once before the
// pipeline runs and shared read-only by every lookup; it is never mutated
// after construction.
type Index struct {
	set map[junction.Key]struct{}
}

// NewIndex builds the reference index. An empty reference cannot separate
// cryptic from annotated junctions, so it is a configuration error.
func NewIndex(keys []junction.Key) (*Index, error) {
	if len(keys) == 0 {
		return nil, &errs.ConfigurationError{Reason: "reference junction set is empty"}
	}
	set := make(map[junction.Key]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return &Index{set: set}, nil
}

// Len reports the number of distinct reference junctions.
func (ix *Index) Len() int { return len(ix.set) }

// Contains reports whether k is an annotated junction. The full key must
// match: a junction known on one strand stays a cryptic candidate on the
// other.
func (ix *Index) Contains(k junction.Key) bool {
	_, ok := ix.set[k]
	return ok
}

// Annotate resolves the annotation status of every distinct key in obs.
// true = annotated, false = cryptic candidate.
func Annotate(ix *Index, obs []junction.Observation) map[junction.Key]bool {
	status := make(map[junction.Key]bool)
	for _, o := range obs {
		if _, seen := status[o.Key]; seen {
			continue
		}
		status[o.Key] = ix.Contains(o.Key)
	}
	return status
}
