package qsim

import (
	"math/cmplx"
	"math/rand"

	"triorng-core/rngerr"
)

// Product is a statevector simulator specialized to unentangled circuits.
//
// The circuit model only admits single-qubit gates, so the joint state stays
// a tensor product and each qubit can be tracked as its own two-amplitude
// vector. This keeps simulation linear in the qubit count; a dense statevector
// would be infeasible at the circuit widths the cascade builds (one qubit per
// requested bit).
//
// Measurement contract: qubits are measured in ascending index order, one
// uniform draw per qubit, outcome 1 iff the draw falls below |amp1|^2. Output
// byte i is the measurement of qubit i. This mapping is fixed; reproducibility
// of seeded runs depends on it.
type Product struct{}

// NewProduct returns a fresh simulator instance. Instances are stateless;
// one is constructed per stage execution to avoid shared backends.
func NewProduct() *Product { return &Product{} }

type amp [2]complex128

// Run executes one shot of c with the given measurement seed.
func (p *Product) Run(c *Circuit, seed uint64) ([]byte, error) {
	if c == nil || c.Qubits <= 0 {
		return nil, rngerr.Simulationf("", 0, "circuit must have at least one qubit")
	}

	state := make([]amp, c.Qubits)
	for i := range state {
		state[i] = amp{1, 0} // |0>
	}
	for _, op := range c.Ops {
		if op.Qubit < 0 || op.Qubit >= c.Qubits {
			return nil, rngerr.Simulationf("", c.Qubits, "gate %c on qubit %d outside circuit of %d qubits", op.Gate, op.Qubit, c.Qubits)
		}
		g, ok := matrices[op.Gate]
		if !ok {
			return nil, rngerr.Simulationf("", c.Qubits, "unsupported gate %c", op.Gate)
		}
		state[op.Qubit] = apply(g, state[op.Qubit])
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	out := make([]byte, c.Qubits)
	for q := 0; q < c.Qubits; q++ {
		p1 := prob1(state[q])
		if rng.Float64() < p1 {
			out[q] = 1
		}
	}
	return out, nil
}

var invSqrt2 = complex(1/1.41421356237309504880168872420969808, 0)

var matrices = map[Gate][2][2]complex128{
	GateH: {{invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}},
	GateX: {{0, 1}, {1, 0}},
	GateZ: {{1, 0}, {0, -1}},
	GateS: {{1, 0}, {0, complex(0, 1)}},
}

func apply(g [2][2]complex128, a amp) amp {
	return amp{
		g[0][0]*a[0] + g[0][1]*a[1],
		g[1][0]*a[0] + g[1][1]*a[1],
	}
}

func prob1(a amp) float64 {
	m := cmplx.Abs(a[1])
	return m * m
}
