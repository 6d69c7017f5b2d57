package cascade

import (
	"strings"

	"triorng-core/rngerr"
)

// Stage identifies one entropy source in the cascade.
type Stage int

const (
	// StageOpenSSL is the cryptographic byte-source stage.
	StageOpenSSL Stage = iota
	// StageQiskit is the phase-rotation quantum stage (quantum-A).
	StageQiskit
	// StageCirq is the bit-flip quantum stage (quantum-B).
	StageCirq
)

// canonicalOrder fixes the pipeline order. Stage selection is an ordered
// filter over this list; the order stages were listed by the caller never
// matters.
var canonicalOrder = [...]Stage{StageOpenSSL, StageQiskit, StageCirq}

func (s Stage) String() string {
	switch s {
	case StageOpenSSL:
		return "openssl"
	case StageQiskit:
		return "qiskit"
	case StageCirq:
		return "cirq"
	default:
		return "unknown"
	}
}

// ParseStage maps a case-insensitive stage name to its Stage.
func ParseStage(name string) (Stage, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openssl":
		return StageOpenSSL, nil
	case "qiskit":
		return StageQiskit, nil
	case "cirq":
		return StageCirq, nil
	default:
		return 0, rngerr.InvalidParameterf("", 0, "unknown cascade stage %q (valid: openssl, qiskit, cirq)", name)
	}
}

// Normalize deduplicates stages and returns them in canonical pipeline order.
// An empty selection is an InvalidParameter error.
func Normalize(stages []Stage) ([]Stage, error) {
	if len(stages) == 0 {
		return nil, rngerr.InvalidParameterf("", 0, "cascade must select at least one stage")
	}
	selected := map[Stage]bool{}
	for _, s := range stages {
		switch s {
		case StageOpenSSL, StageQiskit, StageCirq:
			selected[s] = true
		default:
			return nil, rngerr.InvalidParameterf("", 0, "unknown cascade stage %d", int(s))
		}
	}
	out := make([]Stage, 0, len(selected))
	for _, s := range canonicalOrder {
		if selected[s] {
			out = append(out, s)
		}
	}
	return out, nil
}
