// Package influence maps a prior stage's bits into per-qubit circuit
// modifications, making each quantum stage path-dependent on upstream
// entropy instead of a set of independent coin flips.
package influence

import "triorng-core/bitstring"

// Params holds the per-qubit modification masks for a quantum stage circuit.
// The zero value is the identity encoding: no extra gates, plain
// Hadamard-basis superposition. A stage run with no prior output (standalone
// or first in the cascade) uses the identity.
type Params struct {
	// Phase[i] adds a quarter-turn phase rotation after the Hadamard on
	// qubit i.
	Phase []bool
	// Flip[i] adds a bit flip before the Hadamard on qubit i.
	Flip []bool
}

// Identity reports whether p applies no modifications.
func (p Params) Identity() bool {
	for _, b := range p.Phase {
		if b {
			return false
		}
	}
	for _, b := range p.Flip {
		if b {
			return false
		}
	}
	return true
}

// MaskBytes packs the masks into a stable byte form ('P'/'F' marker followed
// by one 0/1 byte per qubit) for use in seed derivation.
func (p Params) MaskBytes() []byte {
	out := make([]byte, 0, 2+len(p.Phase)+len(p.Flip))
	out = append(out, 'P')
	out = appendMask(out, p.Phase)
	out = append(out, 'F')
	out = appendMask(out, p.Flip)
	return out
}

func appendMask(out []byte, mask []bool) []byte {
	for _, b := range mask {
		if b {
			out = append(out, 1)
		} else {
			out = append(out, 0)
		}
	}
	return out
}

// EncodePhase derives the quantum-A encoding: qubit i receives a phase
// rotation when bit i mod prior.Len() of prior is 1. When qubits exceeds the
// prior length the indices wrap rather than erroring. An empty prior yields
// the identity.
func EncodePhase(prior bitstring.BitString, qubits int) Params {
	return Params{Phase: maskFrom(prior, qubits)}
}

// EncodeFlip derives the quantum-B encoding: qubit i receives a bit flip
// before its Hadamard when bit i mod prior.Len() of prior is 1.
func EncodeFlip(prior bitstring.BitString, qubits int) Params {
	return Params{Flip: maskFrom(prior, qubits)}
}

func maskFrom(prior bitstring.BitString, qubits int) []bool {
	if prior.Len() == 0 || qubits <= 0 {
		return nil
	}
	mask := make([]bool, qubits)
	for i := 0; i < qubits; i++ {
		mask[i] = prior.Bit(i%prior.Len()) == 1
	}
	return mask
}
