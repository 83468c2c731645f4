// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"crypticsj/pkg/api"
)

// StreamText prints TSV lines as results arrive on ch.
func StreamText(w io.Writer, ch <-chan api.ResultV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range ch {
		if _, err := fmt.Fprintln(w, FormatResultRowTSV(r)); err != nil {
			return err
		}
	}
	return nil
}
