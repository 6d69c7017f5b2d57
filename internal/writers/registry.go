// Package writers turns generation reports into serialized outputs.
//
// Writers own all presentation knowledge; the cascade core stays domain-only.
// Serialized formats go through pkg/api (v1) for a stable wire format.
package writers

import (
	"fmt"
	"io"

	"triorng/pkg/api"
)

// Report writers (format → handler). Renderers register themselves in init()
// blocks; registration is idempotent, last wins.
var reportWriters = map[string]func(w io.Writer, r api.ReportV1) error{}

// RegisterReport registers a report renderer for format.
func RegisterReport(format string, fn func(io.Writer, api.ReportV1) error) {
	reportWriters[format] = fn
}

// WriteReport dispatches r to the renderer registered for format.
func WriteReport(format string, w io.Writer, r api.ReportV1) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r)
}

// Formats lists the registered format names.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for f := range reportWriters {
		out = append(out, f)
	}
	return out
}
