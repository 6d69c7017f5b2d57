// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"triorng/internal/writers"
	"triorng/pkg/api"
)

func init() {
	writers.RegisterReport("text", WriteText)
}

// WriteText prints the final Binary/Hex/Dec triple, preceded by one line per
// stage when stage records are present.
func WriteText(w io.Writer, r api.ReportV1) error {
	for _, s := range r.Stages {
		if _, err := fmt.Fprintf(w, "[%s] %s (%s)\n", s.Name, s.Binary, s.Hex); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Binary: %s\nHex:    %s\nDec:    %s\n", r.Binary, r.Hex, r.Decimal)
	return err
}
