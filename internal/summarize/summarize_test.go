package summarize

import (
	"testing"

	"crypticsj-core/aggregate"
	"crypticsj-core/filter"
	"crypticsj-core/junction"
)

func v(gene string, donor int, stage2, final bool) filter.Verdict {
	return filter.Verdict{
		Profile: aggregate.Profile{
			Key:  junction.Key{Chrom: "chr1", Donor: donor, Acceptor: donor + 100, Strand: '+'},
			Gene: gene,
		},
		Stage1: true,
		Stage2: stage2,
		Stage3: final,
		Final:  final,
	}
}

func TestPerGene(t *testing.T) {
	rows := PerGene([]filter.Verdict{
		v("STMN2", 100, true, true),
		v("STMN2", 300, true, false),
		v("STMN2", 500, false, false),
		v("UNC13A", 700, true, true),
	})
	if len(rows) != 2 {
		t.Fatalf("got %d genes, want 2", len(rows))
	}
	// sorted by gene name
	if rows[0].Gene != "STMN2" || rows[1].Gene != "UNC13A" {
		t.Fatalf("order mismatch: %+v", rows)
	}
	s := rows[0]
	if s.CrypticCount != 3 || s.KnockdownAssociated != 2 || s.RescueInduced != 1 {
		t.Fatalf("STMN2 counts mismatch: %+v", s)
	}
	u := rows[1]
	if u.CrypticCount != 1 || u.KnockdownAssociated != 1 || u.RescueInduced != 1 {
		t.Fatalf("UNC13A counts mismatch: %+v", u)
	}
}

func TestPerGeneUnassignedBucket(t *testing.T) {
	rows := PerGene([]filter.Verdict{v("", 100, false, false)})
	if len(rows) != 1 || rows[0].Gene != "" || rows[0].CrypticCount != 1 {
		t.Fatalf("unassigned bucket mismatch: %+v", rows)
	}
}

func TestPerGeneEmpty(t *testing.T) {
	if rows := PerGene(nil); len(rows) != 0 {
		t.Fatalf("want empty summary, got %+v", rows)
	}
}
