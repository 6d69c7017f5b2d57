// pkg/api/report_v1.go
package api

// StageV1 is the stable schema for one stage's verbose record.
type StageV1 struct {
	Name   string `json:"name"` // "openssl" | "qiskit" | "cirq"
	Binary string `json:"binary"`
	Hex    string `json:"hex"`
}

// ReportV1 is the stable JSON schema for a generation run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Bits    int      `json:"bits"`
	Cascade []string `json:"cascade"`
	Seed    *int64   `json:"seed,omitempty"`
	Binary  string   `json:"binary"`
	Hex     string   `json:"hex"`
	Decimal string   `json:"decimal"`
	Stages  []StageV1 `json:"stages,omitempty"`
}
