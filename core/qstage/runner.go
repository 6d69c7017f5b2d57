// Package qstage runs one quantum stage of the cascade: it sizes a circuit
// for the requested bit count, folds in the influence encoding, executes a
// single shot on a local simulator, and truncates the measured bits.
package qstage

import (
	"triorng-core/bitstring"
	"triorng-core/influence"
	"triorng-core/qsim"
	"triorng-core/rngerr"
)

// Kind selects how a stage folds influence into its circuit.
type Kind byte

const (
	// KindPhase applies a quarter-turn phase rotation after the Hadamard
	// on influenced qubits (the quantum-A circuit style).
	KindPhase Kind = 'P'
	// KindFlip applies a bit flip before the unconditional Hadamard on
	// influenced qubits (the quantum-B circuit style).
	KindFlip Kind = 'F'
)

// One measured classical bit per qubit per shot, so a circuit needs exactly
// as many qubits as requested bits.
const bitsPerQubit = 1

// QubitsFor returns the smallest qubit count whose single-shot measurement
// yields at least bits bits.
func QubitsFor(bits int) int { return (bits + bitsPerQubit - 1) / bitsPerQubit }

// Runner executes one quantum stage against an injected simulator.
// Construct one per invocation; it carries no state between calls.
type Runner struct {
	Tag  string // stage name, also the seed-derivation domain tag
	Kind Kind
	Sim  qsim.Simulator
}

// NewPhase returns the quantum-A runner ("qiskit" stage).
func NewPhase(sim qsim.Simulator) *Runner {
	return &Runner{Tag: "qiskit", Kind: KindPhase, Sim: sim}
}

// NewFlip returns the quantum-B runner ("cirq" stage).
func NewFlip(sim qsim.Simulator) *Runner {
	return &Runner{Tag: "cirq", Kind: KindFlip, Sim: sim}
}

// Run builds and executes the stage circuit and returns exactly bits bits.
//
// Seeded runs derive the simulator seed from the user seed, the stage tag,
// and the influence encoding (see SimSeed); unseeded runs draw a fresh seed
// from the OS entropy source. The stage makes a single simulation attempt:
// it is fully deterministic given its inputs, so a retry would only
// reproduce the same failure.
func (r *Runner) Run(bits int, inf influence.Params, seed *int64) (bitstring.BitString, error) {
	if bits <= 0 {
		return "", rngerr.InvalidParameterf(r.Tag, bits, "bit count must be positive, got %d", bits)
	}
	c, err := r.build(bits, inf)
	if err != nil {
		return "", err
	}

	var simSeed uint64
	if seed != nil {
		simSeed = SimSeed(*seed, r.Tag, inf)
	} else {
		simSeed, err = randomSeed()
		if err != nil {
			return "", rngerr.WrapSimulation(r.Tag, bits, err)
		}
	}

	measured, err := r.Sim.Run(c, simSeed)
	if err != nil {
		return "", rngerr.WrapSimulation(r.Tag, bits, err)
	}
	if len(measured) < bits {
		return "", rngerr.Simulationf(r.Tag, bits, "simulator returned %d bits, need %d", len(measured), bits)
	}

	out := make([]byte, len(measured))
	for i, b := range measured {
		out[i] = '0' + b
	}
	bs, err := bitstring.Parse(string(out))
	if err != nil {
		return "", rngerr.WrapSimulation(r.Tag, bits, err)
	}
	return bs.Truncate(bits), nil
}

// build assembles the stage circuit: Hadamard on every qubit plus the gates
// selected by the influence masks.
func (r *Runner) build(bits int, inf influence.Params) (*qsim.Circuit, error) {
	qubits := QubitsFor(bits)
	c := qsim.NewCircuit(qubits)
	switch r.Kind {
	case KindPhase:
		for q := 0; q < qubits; q++ {
			c.H(q)
			if q < len(inf.Phase) && inf.Phase[q] {
				c.S(q)
			}
		}
	case KindFlip:
		for q := 0; q < qubits; q++ {
			if q < len(inf.Flip) && inf.Flip[q] {
				c.X(q)
			}
			c.H(q)
		}
	default:
		return nil, rngerr.Simulationf(r.Tag, bits, "unknown stage kind %c", r.Kind)
	}
	return c, nil
}
