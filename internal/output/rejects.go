// internal/output/rejects.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"crypticsj-core/table"
)

// WriteRejectsTSV writes the loader's reject log: one excluded row per line
// with its reason code. An empty log still gets a header so downstream
// tooling can tell "no rejects" from "no log".
func WriteRejectsTSV(w io.Writer, rejects []table.Reject) error {
	if _, err := fmt.Fprintln(w, RejectTSVHeader); err != nil {
		return err
	}
	for _, r := range rejects {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			r.File, r.Line, orDot(r.Column), r.Code, r.Reason); err != nil {
			return err
		}
	}
	return nil
}

// WriteRejectFile writes the reject log to path, releasing the file handle on
// every exit path. Shared by every binary that accepts --reject-log.
func WriteRejectFile(path string, rejects []table.Reject) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()
	bw := bufio.NewWriter(fh)
	if err := WriteRejectsTSV(bw, rejects); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return fh.Close()
}
