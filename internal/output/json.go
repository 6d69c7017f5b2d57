// internal/output/json.go
package output

import (
	"io"

	"triorng/internal/jsonutil"
	"triorng/internal/writers"
	"triorng/pkg/api"
)

func init() {
	writers.RegisterReport("json", WriteJSON)
}

// WriteJSON writes the v1 report as pretty-indented JSON.
func WriteJSON(w io.Writer, r api.ReportV1) error {
	return jsonutil.EncodePretty(w, r)
}
