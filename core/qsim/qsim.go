// Package qsim provides a minimal quantum-circuit model and a local one-shot
// simulator for it.
//
// The cascade only needs a narrow capability: build a circuit, execute one
// shot, and read one classical bit per qubit. Simulator captures exactly that
// contract so the stage runners stay independent of any particular backend.
package qsim

// Gate is a single-qubit gate supported by the circuit model.
type Gate byte

const (
	// GateH is the Hadamard gate.
	GateH Gate = 'H'
	// GateX is the bit-flip (Pauli-X) gate.
	GateX Gate = 'X'
	// GateZ is the phase-flip (Pauli-Z) gate.
	GateZ Gate = 'Z'
	// GateS is the quarter-turn phase gate (sqrt of Z).
	GateS Gate = 'S'
)

// Op applies Gate to the qubit at index Qubit.
type Op struct {
	Gate  Gate
	Qubit int
}

// Circuit is an ordered list of single-qubit ops over Qubits qubits, all
// initialized to |0>. Measurement of every qubit in the computational basis
// is implicit at the end of the circuit.
type Circuit struct {
	Qubits int
	Ops    []Op
}

// NewCircuit returns an empty circuit over n qubits.
func NewCircuit(n int) *Circuit { return &Circuit{Qubits: n} }

// H appends a Hadamard on qubit q.
func (c *Circuit) H(q int) *Circuit { return c.append(GateH, q) }

// X appends a bit flip on qubit q.
func (c *Circuit) X(q int) *Circuit { return c.append(GateX, q) }

// Z appends a phase flip on qubit q.
func (c *Circuit) Z(q int) *Circuit { return c.append(GateZ, q) }

// S appends a quarter-turn phase rotation on qubit q.
func (c *Circuit) S(q int) *Circuit { return c.append(GateS, q) }

func (c *Circuit) append(g Gate, q int) *Circuit {
	c.Ops = append(c.Ops, Op{Gate: g, Qubit: q})
	return c
}

// Fingerprint serializes the circuit structure into a stable byte form:
// 4-byte big-endian qubit count followed by (gate, 4-byte qubit) per op.
// Two circuits share a fingerprint iff they are structurally identical.
func (c *Circuit) Fingerprint() []byte {
	out := make([]byte, 0, 4+5*len(c.Ops))
	out = appendUint32(out, uint32(c.Qubits))
	for _, op := range c.Ops {
		out = append(out, byte(op.Gate))
		out = appendUint32(out, uint32(op.Qubit))
	}
	return out
}

func appendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// Simulator executes a circuit for exactly one shot and returns one measured
// classical bit (0 or 1) per qubit, in ascending qubit order. The seed fully
// determines the measurement outcome.
type Simulator interface {
	Run(c *Circuit, seed uint64) ([]byte, error)
}
