package writers_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triorng/internal/writers"
	"triorng/pkg/api"

	// Renderers self-register.
	_ "triorng/internal/output"
)

func TestRegisteredFormats(t *testing.T) {
	assert.ElementsMatch(t, []string{"text", "json"}, writers.Formats())
}

func TestWriteReportDispatch(t *testing.T) {
	var buf bytes.Buffer
	r := api.ReportV1{Bits: 1, Cascade: []string{"openssl"}, Binary: "1", Hex: "0x1", Decimal: "1"}
	require.NoError(t, writers.WriteReport("text", &buf, r))
	assert.Contains(t, buf.String(), "Binary: 1")
}

func TestWriteReportUnknownFormat(t *testing.T) {
	err := writers.WriteReport("xml", &bytes.Buffer{}, api.ReportV1{})
	assert.Error(t, err)
}
