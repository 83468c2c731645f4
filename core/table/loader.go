// core/table/loader.go
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"crypticsj-core/errs"
	"crypticsj-core/junction"
)

// Required observation columns. Gene and replicate are optional extras.
var requiredColumns = []string{
	"chromosome", "donor", "acceptor", "strand",
	"sample_id", "condition", "read_count",
}

// Reject reason codes, stable for downstream tooling.
const (
	CodeShortRow        = "short_row"
	CodeBadInt          = "bad_int"
	CodeNegative        = "negative"
	CodeDonorEqAcceptor = "donor_eq_acceptor"
	CodeBadStrand       = "bad_strand"
	CodeBadCondition    = "bad_condition"
)

// Reject is one excluded row with its reason. Rejected rows never reach
// aggregation; the log is always surfaced alongside results.
type Reject struct {
	File   string
	Line   int
	Column string
	Code   string
	Reason string
}

// Load reads one or more columnar observation tables. Format is chosen per
// file: ".parquet" files go through the parquet reader, everything else is
// delimited text (tab by default, comma for ".csv"), transparently gunzipped.
// Structural problems return a SchemaError; row-level violations are
// excluded and reported in the reject slice, never silently dropped.
func Load(paths []string) ([]junction.Observation, []Reject, error) {
	var (
		rows    []junction.Observation
		rejects []Reject
	)
	for _, p := range paths {
		var (
			rs  []junction.Observation
			rj  []Reject
			err error
		)
		if strings.HasSuffix(strings.ToLower(p), ".parquet") {
			rs, rj, err = loadParquet(p)
		} else {
			rs, rj, err = loadDelimited(p)
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, rs...)
		rejects = append(rejects, rj...)
	}
	return rows, rejects, nil
}

// raw is the pre-validation view of one row, shared by all formats.
type raw struct {
	chrom, strand, sample, condition, gene, replicate string
	donor, acceptor, count                            int64
}

// validate applies the domain constraints to one parsed row.
func validate(file string, line int, r raw) (junction.Observation, *Reject) {
	if r.donor < 0 {
		return junction.Observation{}, &Reject{file, line, "donor", CodeNegative, "donor coordinate is negative"}
	}
	if r.acceptor < 0 {
		return junction.Observation{}, &Reject{file, line, "acceptor", CodeNegative, "acceptor coordinate is negative"}
	}
	if r.donor == r.acceptor {
		return junction.Observation{}, &Reject{file, line, "acceptor", CodeDonorEqAcceptor, "donor equals acceptor"}
	}
	if r.count < 0 {
		return junction.Observation{}, &Reject{file, line, "read_count", CodeNegative, "read count is negative"}
	}
	strand, ok := junction.ParseStrand(r.strand)
	if !ok {
		return junction.Observation{}, &Reject{file, line, "strand", CodeBadStrand, fmt.Sprintf("strand %q is not + or -", r.strand)}
	}
	cond, ok := junction.ParseCondition(r.condition)
	if !ok {
		return junction.Observation{}, &Reject{file, line, "condition", CodeBadCondition, fmt.Sprintf("condition %q is not control/siTDP43/rescue-induced", r.condition)}
	}
	return junction.Observation{
		Key: junction.Key{
			Chrom:    strings.TrimSpace(r.chrom),
			Donor:    int(r.donor),
			Acceptor: int(r.acceptor),
			Strand:   strand,
		},
		SampleID:  strings.TrimSpace(r.sample),
		Condition: cond,
		Count:     int(r.count),
		Gene:      strings.TrimSpace(r.gene),
		Replicate: strings.TrimSpace(r.replicate),
	}, nil
}

func loadDelimited(path string) ([]junction.Observation, []Reject, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, nil, &errs.SchemaError{Table: path, Reason: err.Error()}
	}
	defer func() { _ = rc.Close() }()

	cr := csv.NewReader(rc)
	cr.Comma = '\t'
	if strings.HasSuffix(strings.ToLower(strings.TrimSuffix(path, ".gz")), ".csv") {
		cr.Comma = ','
	}
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, &errs.SchemaError{Table: path, Reason: "empty table (no header)"}
	}
	if err != nil {
		return nil, nil, &errs.SchemaError{Table: path, Reason: err.Error()}
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, nil, &errs.SchemaError{Table: path, Column: col, Reason: "required column missing"}
		}
	}
	geneIdx, hasGene := idx["gene"]
	repIdx, hasRep := idx["replicate"]

	var (
		rows    []junction.Observation
		rejects []Reject
	)
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rejects = append(rejects, Reject{path, line, "", CodeShortRow, err.Error()})
			continue
		}
		if len(rec) < len(header) {
			rejects = append(rejects, Reject{path, line, "", CodeShortRow, "fewer fields than header"})
			continue
		}
		var r raw
		r.chrom = rec[idx["chromosome"]]
		r.strand = rec[idx["strand"]]
		r.sample = rec[idx["sample_id"]]
		r.condition = rec[idx["condition"]]
		if hasGene {
			r.gene = rec[geneIdx]
		}
		if hasRep {
			r.replicate = rec[repIdx]
		}
		bad := false
		for _, ic := range []struct {
			col string
			dst *int64
		}{
			{"donor", &r.donor},
			{"acceptor", &r.acceptor},
			{"read_count", &r.count},
		} {
			v, err := strconv.ParseInt(strings.TrimSpace(rec[idx[ic.col]]), 10, 64)
			if err != nil {
				rejects = append(rejects, Reject{path, line, ic.col, CodeBadInt, fmt.Sprintf("%q is not an integer", rec[idx[ic.col]])})
				bad = true
				break
			}
			*ic.dst = v
		}
		if bad {
			continue
		}
		obs, rej := validate(path, line, r)
		if rej != nil {
			rejects = append(rejects, *rej)
			continue
		}
		rows = append(rows, obs)
	}
	return rows, rejects, nil
}

// DomainErrors converts rejects into their error form for aggregate
// reporting (count + sample), matching how row-level failures surface.
func DomainErrors(rejects []Reject) []*errs.DomainError {
	out := make([]*errs.DomainError, 0, len(rejects))
	for _, r := range rejects {
		out = append(out, &errs.DomainError{
			Table: r.File, Line: r.Line, Column: r.Column,
			Code: r.Code, Reason: r.Reason,
		})
	}
	return out
}
