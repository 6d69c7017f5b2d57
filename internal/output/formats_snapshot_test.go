package output

import (
	"bytes"
	"testing"

	"triorng/pkg/api"
)

// The text surface is consumed by scripts; keep it stable.
func TestTextFormat_Stable(t *testing.T) {
	r := api.ReportV1{
		Bits:    8,
		Cascade: []string{"openssl"},
		Binary:  "00010101",
		Hex:     "0x15",
		Decimal: "21",
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, r); err != nil {
		t.Fatalf("write: %v", err)
	}
	const want = "Binary: 00010101\nHex:    0x15\nDec:    21\n"
	if buf.String() != want {
		t.Fatalf("text format changed:\n got:  %q\n want: %q", buf.String(), want)
	}
}

func TestTextFormatVerbose_Stable(t *testing.T) {
	r := api.ReportV1{
		Bits:    4,
		Cascade: []string{"openssl", "qiskit"},
		Binary:  "1010",
		Hex:     "0xa",
		Decimal: "10",
		Stages: []api.StageV1{
			{Name: "openssl", Binary: "0111", Hex: "0x7"},
			{Name: "qiskit", Binary: "1010", Hex: "0xa"},
		},
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, r); err != nil {
		t.Fatalf("write: %v", err)
	}
	const want = "[openssl] 0111 (0x7)\n[qiskit] 1010 (0xa)\nBinary: 1010\nHex:    0xa\nDec:    10\n"
	if buf.String() != want {
		t.Fatalf("verbose text format changed:\n got:  %q\n want: %q", buf.String(), want)
	}
}
