// core/table/parquet.go
package table

import (
	"crypticsj-core/errs"
	"crypticsj-core/junction"

	"github.com/parquet-go/parquet-go"
)

// parquetRow mirrors the observation schema. The junction caller upstream
// emits these tables as parquet, so columns are already typed; anything the
// reader cannot map is structural, not row-level.
type parquetRow struct {
	Chromosome string `parquet:"chromosome"`
	Donor      int64  `parquet:"donor"`
	Acceptor   int64  `parquet:"acceptor"`
	Strand     string `parquet:"strand"`
	SampleID   string `parquet:"sample_id"`
	Condition  string `parquet:"condition"`
	ReadCount  int64  `parquet:"read_count"`
	Gene       string `parquet:"gene,optional"`
	Replicate  string `parquet:"replicate,optional"`
}

func loadParquet(path string) ([]junction.Observation, []Reject, error) {
	recs, err := parquet.ReadFile[parquetRow](path)
	if err != nil {
		return nil, nil, &errs.SchemaError{Table: path, Reason: err.Error()}
	}
	var (
		rows    []junction.Observation
		rejects []Reject
	)
	for i, rec := range recs {
		obs, rej := validate(path, i+1, raw{
			chrom:     rec.Chromosome,
			strand:    rec.Strand,
			sample:    rec.SampleID,
			condition: rec.Condition,
			gene:      rec.Gene,
			replicate: rec.Replicate,
			donor:     rec.Donor,
			acceptor:  rec.Acceptor,
			count:     rec.ReadCount,
		})
		if rej != nil {
			rejects = append(rejects, *rej)
			continue
		}
		rows = append(rows, obs)
	}
	return rows, rejects, nil
}
