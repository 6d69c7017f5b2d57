// Package cascade sequences the selected entropy stages, feeding each
// stage's output into the next stage's influence encoding.
package cascade

import (
	"triorng-core/bitstring"
	"triorng-core/entropy"
	"triorng-core/influence"
	"triorng-core/qsim"
	"triorng-core/qstage"
	"triorng-core/rngerr"
)

// Result records one stage's output. Results are never mutated after
// creation; verbose reporting consumes them in execution order.
type Result struct {
	Stage Stage
	Bits  bitstring.BitString
	Hex   string
}

// Orchestrator runs the cascade over explicitly constructed stages. Build a
// fresh one per invocation; no state survives Execute.
type Orchestrator struct {
	Entropy *entropy.Source
	Qiskit  *qstage.Runner
	Cirq    *qstage.Runner
}

// New assembles an orchestrator from injected stages. Tests use this to swap
// in fixed byte sources and fake simulators.
func New(src *entropy.Source, qiskit, cirq *qstage.Runner) *Orchestrator {
	return &Orchestrator{Entropy: src, Qiskit: qiskit, Cirq: cirq}
}

// NewDefault assembles the production cascade: OS-backed entropy source and
// a per-call product-state simulator for each quantum stage.
func NewDefault() *Orchestrator {
	return New(
		entropy.New(),
		qstage.NewPhase(qsim.NewProduct()),
		qstage.NewFlip(qsim.NewProduct()),
	)
}

// Execute runs the selected stages in canonical order and returns the final
// bit string of exactly bits bits plus the ordered per-stage results.
//
// Stages execute strictly sequentially: each stage's input depends on the
// previous stage's output. The first executed stage (and any quantum stage
// run standalone) receives the identity influence. If any stage fails the
// whole generation fails; partial cascades are never substituted.
func (o *Orchestrator) Execute(bits int, stages []Stage, seed *int64) (bitstring.BitString, []Result, error) {
	if bits <= 0 {
		return "", nil, rngerr.InvalidParameterf("", bits, "bit count must be positive, got %d", bits)
	}
	order, err := Normalize(stages)
	if err != nil {
		return "", nil, err
	}

	var prior bitstring.BitString
	results := make([]Result, 0, len(order))
	for _, stage := range order {
		var out bitstring.BitString
		switch stage {
		case StageOpenSSL:
			out, err = o.Entropy.Generate(bits, seed)
		case StageQiskit:
			inf := influence.EncodePhase(prior, qstage.QubitsFor(bits))
			out, err = o.Qiskit.Run(bits, inf, seed)
		case StageCirq:
			inf := influence.EncodeFlip(prior, qstage.QubitsFor(bits))
			out, err = o.Cirq.Run(bits, inf, seed)
		}
		if err != nil {
			return "", nil, err
		}
		results = append(results, Result{Stage: stage, Bits: out, Hex: out.Hex()})
		prior = out
	}
	return prior, results, nil
}
