// internal/output/summary.go
package output

import (
	"fmt"
	"io"

	"crypticsj/internal/jsonutil"
	"crypticsj/pkg/api"
)

// WriteSummaryTSV writes the per-gene summary table.
func WriteSummaryTSV(w io.Writer, list []api.GeneSummaryV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SummaryTSVHeader); err != nil {
			return err
		}
	}
	for _, s := range list {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\n",
			orDot(s.Gene), s.CrypticCount, s.KnockdownAssociated, s.RescueInduced); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummaryJSON writes the per-gene summary as a JSON array.
func WriteSummaryJSON(w io.Writer, list []api.GeneSummaryV1) error {
	return jsonutil.EncodePretty(w, list)
}
