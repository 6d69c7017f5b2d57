// Package rngerr defines the stable error taxonomy shared by all cascade
// stages.
//
// Callers should branch on Kind via errors.As/IsKind rather than matching
// error strings; Message text is for humans and may evolve.
package rngerr

import (
	"errors"
	"fmt"
)

// Kind is a stable category for programmatic error handling.
type Kind string

const (
	// KindInvalidParameter covers bad bit counts and empty or unknown
	// cascade stages. Surfaced before any stage runs.
	KindInvalidParameter Kind = "InvalidParameter"

	// KindSimulation covers simulator backend failures. The whole
	// generation fails; partial cascades are never substituted.
	KindSimulation Kind = "SimulationError"
)

// Error carries the failing stage and the requested bit count so callers can
// diagnose without parsing Message.
type Error struct {
	Kind    Kind
	Stage   string // stage name, "" when the failure precedes stage dispatch
	Bits    int    // requested bit count, 0 when not applicable
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Stage != "" {
		return fmt.Sprintf("%s: stage %s: %s", e.Kind, e.Stage, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// InvalidParameterf returns a KindInvalidParameter error.
func InvalidParameterf(stage string, bits int, format string, a ...any) error {
	return &Error{Kind: KindInvalidParameter, Stage: stage, Bits: bits, Message: fmt.Sprintf(format, a...)}
}

// Simulationf returns a KindSimulation error.
func Simulationf(stage string, bits int, format string, a ...any) error {
	return &Error{Kind: KindSimulation, Stage: stage, Bits: bits, Message: fmt.Sprintf(format, a...)}
}

// WrapSimulation attaches stage context to a simulator backend failure.
func WrapSimulation(stage string, bits int, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: KindSimulation, Stage: stage, Bits: bits, Message: cause.Error(), Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
