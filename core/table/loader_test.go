package table

import (
	"errors"
	"os"
	"testing"

	"crypticsj-core/errs"
	"crypticsj-core/junction"
)

const header = "chromosome\tdonor\tacceptor\tstrand\tsample_id\tcondition\tread_count\tgene\n"

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestLoadTSV(t *testing.T) {
	fn := write(t, "obs_test.tsv", header+
		"chr1\t100\t200\t+\ts1\tcontrol\t7\tUNC13A\n"+
		"chr1\t100\t200\t+\ts2\tsiTDP43\t50\tUNC13A\n")
	defer os.Remove(fn)

	rows, rejects, err := Load([]string{fn})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rejects) != 0 {
		t.Fatalf("unexpected rejects: %+v", rejects)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := junction.Key{Chrom: "chr1", Donor: 100, Acceptor: 200, Strand: '+'}
	if rows[0].Key != want || rows[0].Condition != junction.Control || rows[0].Count != 7 {
		t.Fatalf("row 0 mismatch: %+v", rows[0])
	}
	if rows[1].Condition != junction.Knockdown || rows[1].Gene != "UNC13A" {
		t.Fatalf("row 1 mismatch: %+v", rows[1])
	}
}

func TestLoadRejectsDomainViolations(t *testing.T) {
	fn := write(t, "obs_bad.tsv", header+
		"chr1\t100\t100\t+\ts1\tcontrol\t7\tg\n"+ // donor == acceptor
		"chr1\t100\t200\t*\ts1\tcontrol\t7\tg\n"+ // bad strand
		"chr1\t100\t200\t+\ts1\tmock\t7\tg\n"+ // unknown condition
		"chr1\t100\t200\t+\ts1\tcontrol\t-3\tg\n"+ // negative count
		"chr1\tx\t200\t+\ts1\tcontrol\t7\tg\n"+ // non-integer donor
		"chr1\t300\t400\t-\ts1\trescueInduced\t4\tg\n") // clean
	defer os.Remove(fn)

	rows, rejects, err := Load([]string{fn})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 1 || rows[0].Condition != junction.Rescue {
		t.Fatalf("clean rows = %+v, want just the rescueInduced row", rows)
	}
	if len(rejects) != 5 {
		t.Fatalf("got %d rejects, want 5: %+v", len(rejects), rejects)
	}
	codes := map[string]bool{}
	for _, r := range rejects {
		codes[r.Code] = true
		if r.Line < 2 {
			t.Errorf("reject line %d should be past the header", r.Line)
		}
	}
	for _, want := range []string{CodeDonorEqAcceptor, CodeBadStrand, CodeBadCondition, CodeNegative, CodeBadInt} {
		if !codes[want] {
			t.Errorf("missing reject code %s in %+v", want, rejects)
		}
	}
}

func TestLoadMissingColumnIsSchemaError(t *testing.T) {
	fn := write(t, "obs_noschema.tsv",
		"chromosome\tdonor\tacceptor\tstrand\tsample_id\tread_count\n"+
			"chr1\t100\t200\t+\ts1\t7\n")
	defer os.Remove(fn)

	_, _, err := Load([]string{fn})
	var se *errs.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("want SchemaError, got %v", err)
	}
	if se.Column != "condition" {
		t.Fatalf("SchemaError names column %q, want condition", se.Column)
	}
}

func TestLoadEmptyTableIsSchemaError(t *testing.T) {
	fn := write(t, "obs_empty.tsv", "")
	defer os.Remove(fn)
	_, _, err := Load([]string{fn})
	var se *errs.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("want SchemaError for empty table, got %v", err)
	}
}

func TestLoadCSVComma(t *testing.T) {
	fn := write(t, "obs_test.csv",
		"chromosome,donor,acceptor,strand,sample_id,condition,read_count\n"+
			"chr2,10,90,-,s1,rescue-induced,3\n")
	defer os.Remove(fn)

	rows, rejects, err := Load([]string{fn})
	if err != nil || len(rejects) != 0 || len(rows) != 1 {
		t.Fatalf("rows=%v rejects=%v err=%v", rows, rejects, err)
	}
	if rows[0].Key.Strand != '-' || rows[0].Condition != junction.Rescue {
		t.Fatalf("row mismatch: %+v", rows[0])
	}
}

func TestLoadMergesFiles(t *testing.T) {
	a := write(t, "obs_a.tsv", header+"chr1\t1\t50\t+\ts1\tcontrol\t1\tg\n")
	b := write(t, "obs_b.tsv", header+"chr2\t1\t50\t+\ts1\tcontrol\t1\tg\n")
	defer os.Remove(a)
	defer os.Remove(b)
	rows, _, err := Load([]string{a, b})
	if err != nil || len(rows) != 2 {
		t.Fatalf("rows=%d err=%v, want 2 rows", len(rows), err)
	}
}
