// internal/output/json.go
package output

import (
	"io"

	"crypticsj/internal/jsonutil"
	"crypticsj/pkg/api"
)

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
// A nil slice still encodes as an empty array, never null.
func WriteJSON(w io.Writer, list []api.ResultV1) error {
	if list == nil {
		list = []api.ResultV1{}
	}
	return jsonutil.EncodePretty(w, list)
}
