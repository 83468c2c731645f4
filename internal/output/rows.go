// internal/output/rows.go
package output

import (
	"fmt"
	"strconv"

	"crypticsj/pkg/api"
)

// Fold formats fold-change values with a fixed precision so identical runs
// produce byte-identical tables.
func Fold(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// FormatResultRowTSV returns one result row (no trailing newline), columns
// matching TSVHeader.
func FormatResultRowTSV(r api.ResultV1) string {
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%t\t%t\t%t",
		r.Chrom, r.Donor, r.Acceptor, r.Strand, orDot(r.Gene),
		r.ControlCount, r.KnockdownCount, r.RescueCount,
		r.ControlReplicates, r.KnockdownReplicates, r.RescueReplicates,
		Fold(r.KnockdownFold), Fold(r.RescueFold),
		r.Stage1Passed, r.Stage2Passed, r.Stage3Passed,
	)
}

func orDot(s string) string {
	if s == "" {
		return "."
	}
	return s
}
