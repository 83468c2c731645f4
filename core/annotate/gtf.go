// core/annotate/gtf.go
package annotate

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"crypticsj-core/junction"
	"crypticsj-core/table"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
)

type exon struct{ start, end int } // 0-based half-open, as biogo parses

type transcript struct {
	chrom  string
	strand byte
	exons  []exon
}

// LoadGTF derives the reference junction set from a transcript model in
// GTF/GFF2: every pair of consecutive exons on a transcript contributes one
// intron junction. Features without a strand or a transcript identifier are
// skipped.
func LoadGTF(path string) ([]junction.Key, error) {
	rc, err := table.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	txs := make(map[string]*transcript)
	r := gff.NewReader(bufio.NewReader(rc))
	for {
		f, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		gf, ok := f.(*gff.Feature)
		if !ok || gf.Feature != "exon" {
			continue
		}
		var strand byte
		switch gf.FeatStrand {
		case seq.Plus:
			strand = '+'
		case seq.Minus:
			strand = '-'
		default:
			continue
		}
		id := attrValue(gf.FeatAttributes, "transcript_id")
		if id == "" {
			id = attrValue(gf.FeatAttributes, "Parent")
		}
		if id == "" {
			continue
		}
		key := gf.SeqName + "\x00" + id
		t := txs[key]
		if t == nil {
			t = &transcript{chrom: gf.SeqName, strand: strand}
			txs[key] = t
		}
		t.exons = append(t.exons, exon{start: gf.FeatStart, end: gf.FeatEnd})
	}
	return junctionKeys(txs), nil
}

// junctionKeys turns per-transcript exon chains into deduplicated intron
// junctions. Exon coordinates are 0-based half-open; the emitted keys use
// the intron-interval convention (donor = first intronic base, acceptor =
// last intronic base, 1-based).
func junctionKeys(txs map[string]*transcript) []junction.Key {
	seen := make(map[junction.Key]struct{})
	var keys []junction.Key
	for _, t := range txs {
		sort.Slice(t.exons, func(i, j int) bool { return t.exons[i].start < t.exons[j].start })
		for i := 1; i < len(t.exons); i++ {
			prev, next := t.exons[i-1], t.exons[i]
			if next.start <= prev.end {
				continue // overlapping or abutting exons leave no intron
			}
			k := junction.Key{
				Chrom:    t.chrom,
				Donor:    prev.end + 1,
				Acceptor: next.start,
				Strand:   t.strand,
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return junction.Less(keys[i], keys[j]) })
	return keys
}

// attrValue pulls one tag out of a GFF2/GTF attribute list, tolerating the
// quoted GTF form (tag "value";).
func attrValue(attrs gff.Attributes, tag string) string {
	for _, a := range attrs {
		if strings.TrimSpace(a.Tag) != tag {
			continue
		}
		return strings.Trim(strings.TrimSpace(a.Value), `";`)
	}
	return ""
}
