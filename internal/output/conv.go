// internal/output/conv.go
package output

import (
	"crypticsj-core/filter"
	"crypticsj-core/junction"
	"crypticsj/pkg/api"
)

// ToAPIResult converts a domain Verdict to the stable wire schema (v1).
func ToAPIResult(v filter.Verdict) api.ResultV1 {
	ctl := v.Profile.Get(junction.Control)
	kd := v.Profile.Get(junction.Knockdown)
	res := v.Profile.Get(junction.Rescue)
	return api.ResultV1{
		Chrom:    v.Profile.Key.Chrom,
		Donor:    v.Profile.Key.Donor,
		Acceptor: v.Profile.Key.Acceptor,
		Strand:   string(v.Profile.Key.Strand),
		Gene:     v.Profile.Gene,

		ControlCount:   ctl.Sum,
		KnockdownCount: kd.Sum,
		RescueCount:    res.Sum,

		ControlReplicates:   ctl.Replicates,
		KnockdownReplicates: kd.Replicates,
		RescueReplicates:    res.Replicates,

		ControlMean:   ctl.Mean,
		KnockdownMean: kd.Mean,
		RescueMean:    res.Mean,

		KnockdownFold: v.KnockdownFold,
		RescueFold:    v.RescueFold,

		Stage1Passed: v.Stage1,
		Stage2Passed: v.Stage2,
		Stage3Passed: v.Stage3,
		Final:        v.Final,
	}
}
