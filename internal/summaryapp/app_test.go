package summaryapp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const obsHeader = "chromosome\tdonor\tacceptor\tstrand\tsample_id\tcondition\tread_count\tgene\n"

func write(t *testing.T, fn, data string) string {
	t.Helper()
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestSummaryEndToEnd(t *testing.T) {
	obs := write(t, "sum_obs.tsv", obsHeader+
		"chr1\t1000\t2000\t+\tk1\tsiTDP43\t50\tSTMN2\n"+
		"chr1\t1000\t2000\t+\tr1\trescue-induced\t2\tSTMN2\n"+
		"chr2\t100\t900\t-\tc1\tcontrol\t10\tGENEC\n"+
		"chr2\t100\t900\t-\tk1\tsiTDP43\t12\tGENEC\n")
	ref := write(t, "sum_ref.tsv", "chr9 1 2 +\n")
	defer os.Remove(obs)
	defer os.Remove(ref)

	var out, errBuf bytes.Buffer
	code := Run([]string{
		"--junctions", obs,
		"--reference", ref,
		"--min-reads", "1",
		"--quiet",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want header + 2 genes, got %q", out.String())
	}
	// GENEC: cryptic but not knockdown-associated (fold 13/11) nor rescued.
	if !strings.Contains(out.String(), "GENEC\t1\t0\t0") {
		t.Fatalf("GENEC row mismatch: %q", out.String())
	}
	// STMN2: cryptic, knockdown-associated, rescued.
	if !strings.Contains(out.String(), "STMN2\t1\t1\t1") {
		t.Fatalf("STMN2 row mismatch: %q", out.String())
	}
}

func TestSummaryWritesRejectLog(t *testing.T) {
	obs := write(t, "sum_rej_obs.tsv", obsHeader+
		"chr1\t1000\t2000\t+\tk1\tsiTDP43\t50\tSTMN2\n"+
		"chr1\t3000\t3000\t+\tk1\tsiTDP43\t5\tSTMN2\n")
	ref := write(t, "sum_rej_ref.tsv", "chr9 1 2 +\n")
	logPath := filepath.Join(t.TempDir(), "rejects.tsv")
	defer os.Remove(obs)
	defer os.Remove(ref)

	var out, errBuf bytes.Buffer
	code := Run([]string{
		"--junctions", obs,
		"--reference", ref,
		"--min-reads", "1",
		"--reject-log", logPath,
		"--quiet",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errBuf.String())
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reject log not written: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "donor_eq_acceptor") {
		t.Fatalf("unexpected reject log: %q", string(data))
	}
}

func TestSummaryRejectsJSONL(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{
		"--junctions", "a.tsv",
		"--reference", "r.tsv",
		"--output", "jsonl",
	}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("jsonl summaries should exit 2, got %d", code)
	}
}
