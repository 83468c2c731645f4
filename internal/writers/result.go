// internal/writers/result.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"crypticsj/internal/jsonlutil"
	"crypticsj/internal/output"
	"crypticsj/pkg/api"
)

// StartResultWriter spins up a writer goroutine for final results. Results
// arrive already sorted by genomic coordinate, so text and jsonl stream;
// json buffers to emit one array.
func StartResultWriter(out io.Writer, format string, header bool, bufSize int) (chan<- api.ResultV1, <-chan error) {
	switch format {
	case output.FormatJSONL:
		return jsonlutil.Start[api.ResultV1](out, bufSize,
			func(enc *json.Encoder, r api.ResultV1) error { return enc.Encode(r) },
			IsBrokenPipe,
		)
	case output.FormatJSON:
		return startBuffered(out, bufSize, output.WriteJSON)
	case output.FormatText:
		if bufSize <= 0 {
			bufSize = 64
		}
		in := make(chan api.ResultV1, bufSize)
		errCh := make(chan error, 1)
		go func() {
			errCh <- output.StreamText(out, in, header)
		}()
		return in, errCh
	default:
		in := make(chan api.ResultV1)
		errCh := make(chan error, 1)
		go func() {
			for range in {
			}
			errCh <- fmt.Errorf("unsupported output %q", format)
		}()
		return in, errCh
	}
}

func startBuffered(out io.Writer, bufSize int, flush func(io.Writer, []api.ResultV1) error) (chan<- api.ResultV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.ResultV1, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var buf []api.ResultV1
		for r := range in {
			buf = append(buf, r)
		}
		errCh <- flush(out, buf)
	}()
	return in, errCh
}
